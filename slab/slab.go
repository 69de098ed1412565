// Package slab provides a growable store that hands out tagged indices.
//
// It demonstrates the intended use of debugtag: every index remembers, in
// debug builds, which slab issued it, and using it with another slab panics
// instead of returning a garbage value.
package slab

import (
	"log"

	"github.com/sarchlab/debugtag"
)

// A Slab stores values and refers to them by index.
type Slab[T any] struct {
	items []T
	tag   debugtag.Tag
}

// New creates an empty slab.
func New[T any]() *Slab[T] {
	return &Slab[T]{tag: debugtag.New()}
}

// An Index refers to a value in the slab that issued it.
type Index struct {
	pos int
	tag debugtag.Tag
}

// Push appends a value and returns its index.
func (s *Slab[T]) Push(item T) Index {
	s.items = append(s.items, item)

	return Index{
		pos: len(s.items) - 1,
		tag: s.tag,
	}
}

// Get returns the value at the given index.
func (s *Slab[T]) Get(ix Index) T {
	s.mustOwn(ix)
	return s.items[ix.pos]
}

// Set replaces the value at the given index.
func (s *Slab[T]) Set(ix Index, item T) {
	s.mustOwn(ix)
	s.items[ix.pos] = item
}

// Len returns the number of stored values.
func (s *Slab[T]) Len() int {
	return len(s.items)
}

func (s *Slab[T]) mustOwn(ix Index) {
	if !s.tag.Equal(ix.tag) {
		log.Panic("index does not stem from this slab")
	}
}
