// Package sparse provides a paged sparse array and a sparse set built on top of it.
//
// Both types are usable as zero values and are not safe for concurrent use.
package sparse

import "fmt"

// PageSize is the number of keys covered by a single page.
const PageSize = 4096

type page[T any] struct {
	values  [PageSize]T
	present [PageSize]bool
}

// Array maps non-negative integer keys to values, allocating fixed-size pages
// lazily so that wide key ranges do not need one contiguous allocation.
// Pages are never freed once allocated.
type Array[T any] struct {
	pages []*page[T]
}

func pageIndex(key int) (int, int) {
	if key < 0 {
		panic(fmt.Sprintf("sparse: negative key %d", key))
	}
	return key / PageSize, key % PageSize
}

// Get returns the value stored at key. Unallocated pages and unwritten slots
// report absent.
func (a *Array[T]) Get(key int) (T, bool) {
	var zero T
	p, offset := pageIndex(key)
	if p >= len(a.pages) || a.pages[p] == nil {
		return zero, false
	}
	pg := a.pages[p]
	if !pg.present[offset] {
		return zero, false
	}
	return pg.values[offset], true
}

// Insert stores value at key and returns the previous value, if any.
func (a *Array[T]) Insert(key int, value T) (T, bool) {
	p, offset := pageIndex(key)
	if p >= len(a.pages) {
		a.createPage(p)
	} else if a.pages[p] == nil {
		a.pages[p] = new(page[T])
	}

	pg := a.pages[p]
	prev, had := pg.values[offset], pg.present[offset]
	pg.values[offset] = value
	pg.present[offset] = true
	return prev, had
}

// Remove clears key and returns the value that was stored there.
func (a *Array[T]) Remove(key int) (T, bool) {
	var zero T
	p, offset := pageIndex(key)
	if p >= len(a.pages) || a.pages[p] == nil {
		return zero, false
	}
	pg := a.pages[p]
	if !pg.present[offset] {
		return zero, false
	}
	prev := pg.values[offset]
	pg.values[offset] = zero
	pg.present[offset] = false
	return prev, true
}

// Pages returns the length of the page list, placeholders included.
func (a *Array[T]) Pages() int {
	return len(a.pages)
}

// createPage extends the page list with nil placeholders up to p and
// allocates page p itself.
func (a *Array[T]) createPage(p int) {
	if p < len(a.pages) {
		panic(fmt.Sprintf("sparse: page %d already exists", p))
	}
	skipped := p - len(a.pages)
	a.pages = append(a.pages, make([]*page[T], skipped)...)
	a.pages = append(a.pages, new(page[T]))
}
