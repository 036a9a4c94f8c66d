// Command gensystems writes the fixed-arity system runners of package depot.
//
//	go run ./cmd/gensystems -o system_generated.go -max 8
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const header = `// Code generated by gensystems. DO NOT EDIT.

package depot
`

var runTemplate = template.Must(template.New("run").Parse(`
// Run{{.N}} resolves {{.Params}} before calling system.
func Run{{.N}}[O any{{.TypeParams}}](w *World, system func({{.Args}}) O) (O, error) {
	var out O
	err := w.runScoped(func(s *scope) error {
{{- range .Indices}}
		p{{.}}, err := Borrow[Q{{.}}, P{{.}}](w)
		if err != nil {
			return fmt.Errorf("system parameter {{.}}: %w", err)
		}
		s.hold(p{{.}})
{{- end}}
		out = system({{.CallArgs}})
		return nil
	})
	return out, err
}

// Exec{{.N}} is Run{{.N}} for systems without a result.
func Exec{{.N}}{{if .ExecTypeParams}}[{{.ExecTypeParams}}]{{end}}(w *World, system func({{.Args}})) error {
	_, err := Run{{.N}}[struct{}{{.TypeArgs}}](w, func({{.NamedArgs}}) struct{} {
		system({{.CallArgs}})
		return struct{}{}
	})
	return err
}
`))

type arity struct {
	N              int
	Indices        []int
	Params         string
	TypeParams     string
	ExecTypeParams string
	TypeArgs       string
	Args           string
	NamedArgs      string
	CallArgs       string
}

func newArity(n int) arity {
	a := arity{N: n}
	var typeParams, typeArgs, args, named, call []string
	for i := 1; i <= n; i++ {
		a.Indices = append(a.Indices, i)
		typeParams = append(typeParams, fmt.Sprintf("Q%d any, P%d queryPtr[Q%d]", i, i, i))
		typeArgs = append(typeArgs, fmt.Sprintf("Q%d, P%d", i, i))
		args = append(args, fmt.Sprintf("P%d", i))
		named = append(named, fmt.Sprintf("p%d P%d", i, i))
		call = append(call, fmt.Sprintf("p%d", i))
	}
	switch n {
	case 0:
		a.Params = "no queries"
	case 1:
		a.Params = "one query"
	default:
		a.Params = fmt.Sprintf("%d queries left to right", n)
	}
	if n > 0 {
		a.TypeParams = ", " + strings.Join(typeParams, ", ")
		a.TypeArgs = ", " + strings.Join(typeArgs, ", ")
	}
	a.ExecTypeParams = strings.Join(typeParams, ", ")
	a.Args = strings.Join(args, ", ")
	a.NamedArgs = strings.Join(named, ", ")
	a.CallArgs = strings.Join(call, ", ")
	return a
}

// generate renders and formats the runners for arities 0 through maxArity.
func generate(maxArity int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\nimport \"fmt\"\n")
	for n := 0; n <= maxArity; n++ {
		if err := runTemplate.Execute(&buf, newArity(n)); err != nil {
			return nil, fmt.Errorf("arity %d: %w", n, err)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

func main() {
	out := flag.String("o", "system_generated.go", "output file")
	maxArity := flag.Int("max", 8, "largest number of system parameters")
	flag.Parse()

	src, err := generate(*maxArity)
	if err != nil {
		log.Fatalf("gensystems: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gensystems: write %s: %v", *out, err)
	}
}
