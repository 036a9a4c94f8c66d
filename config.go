package depot

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds package-wide defaults applied to every new world
var Config config = config{
	logger: slog.New(slog.DiscardHandler),
}

type config struct {
	logger *slog.Logger
}

// SetLogger sets the logger new worlds start with
func (c *config) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.logger = logger
}

// Options configures a world. The zero value is ready to use.
type Options struct {
	// Name labels the world in log records.
	Name string `yaml:"name"`
	// EntityLimit caps the entity index space. Zero means the full 32-bit range.
	EntityLimit uint32 `yaml:"entity_limit"`
	// EntityCapacity preallocates room for this many entity slots.
	EntityCapacity int `yaml:"entity_capacity"`
}

// ParseOptions decodes YAML world options.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("depot: unmarshal options: %w", err)
	}
	if opts.EntityCapacity < 0 {
		return Options{}, fmt.Errorf("depot: entity_capacity must not be negative, got %d", opts.EntityCapacity)
	}
	return opts, nil
}

// LoadOptions reads and decodes a YAML options file.
func LoadOptions(filename string) (Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Options{}, fmt.Errorf("depot: load %s: %w", filename, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("depot: %s: %w", filename, err)
	}
	return opts, nil
}

// Option customises a world under construction.
type Option func(*World)

// WithOptions applies decoded options.
func WithOptions(opts Options) Option {
	return func(w *World) {
		w.opts = opts
	}
}

func WithEntityLimit(limit uint32) Option {
	return func(w *World) {
		w.opts.EntityLimit = limit
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithData attaches a caller-defined record to the world. It is reachable
// through DataRef and DataMut and through caller-defined queries.
func WithData[D any](data D) Option {
	return func(w *World) {
		w.data = storageMap{}
		insertStorage(&w.data, &data)
	}
}
