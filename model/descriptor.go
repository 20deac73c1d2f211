package model

import "container/list"

// Descriptor is a uniform, non-owning handle over one element of a slice
// or of a container/list.List. Over a random-access container (a Go slice)
// it is just an integer index — trivially copyable, ordered, O(1) to
// dereference. Over a container/list.List (the storage the dynamic
// container's linked inner kinds use for a row) it wraps the *list.Element
// itself, so walking it is O(1) per step. csr.Graph and dynamic.Graph do
// not hand out Descriptors: their Vertices and EdgesAt return ids and
// materialized edge slices.
//
// Descriptor is read-only: Deref returns T by value (for a slice-backed
// descriptor, a copy of the element; for a list-backed descriptor, the
// node's payload). Mutation goes through the owning container's own
// methods, not through the descriptor, which keeps the const-propagation
// story in spec.md section 9 simple: a Descriptor obtained from a
// read-only view can never be used to mutate the graph.
type Descriptor[T any] struct {
	slice *[]T
	idx   int

	elem *list.Element
}

// IndexDescriptor builds a Descriptor over a random-access slice at offset i.
func IndexDescriptor[T any](s *[]T, i int) Descriptor[T] {
	return Descriptor[T]{slice: s, idx: i}
}

// ListDescriptor builds a Descriptor over a container/list element.
func ListDescriptor[T any](e *list.Element) Descriptor[T] {
	return Descriptor[T]{elem: e}
}

// IsList reports whether d wraps a linked element rather than a slice index.
func (d Descriptor[T]) IsList() bool { return d.elem != nil }

// Index returns the offset of d within its owning slice. Only meaningful
// when IsList() is false; callers that mix container kinds should check
// IsList first.
func (d Descriptor[T]) Index() int { return d.idx }

// Deref returns the element d refers to.
func (d Descriptor[T]) Deref() T {
	if d.elem != nil {
		return d.elem.Value.(T)
	}
	return (*d.slice)[d.idx]
}

// Valid reports whether a slice-backed d is in bounds of its slice. A
// list-backed d always reports true, even if its element was removed.
func (d Descriptor[T]) Valid() bool {
	if d.elem != nil {
		return true
	}
	return d.slice != nil && d.idx >= 0 && d.idx < len(*d.slice)
}

// DescriptorView returns a Descriptor for every element of a random-access
// slice, in order, ids computed relative to the slice's own origin.
func DescriptorView[T any](s *[]T) []Descriptor[T] {
	out := make([]Descriptor[T], len(*s))
	for i := range *s {
		out[i] = IndexDescriptor(s, i)
	}
	return out
}

// DescriptorSubrangeView restricts DescriptorView to the half-open range
// [first, last), while ids stay relative to the container origin (i.e. the
// first returned Descriptor has Index() == first, not 0).
func DescriptorSubrangeView[T any](s *[]T, first, last int) []Descriptor[T] {
	if first < 0 {
		first = 0
	}
	if last > len(*s) {
		last = len(*s)
	}
	if first >= last {
		return nil
	}
	out := make([]Descriptor[T], 0, last-first)
	for i := first; i < last; i++ {
		out = append(out, IndexDescriptor(s, i))
	}
	return out
}

// ListDescriptorView walks a container/list.List front-to-back and returns
// a Descriptor per element, for rows stored as a list (as the dynamic
// container's linked inner kinds store them), where there is no cheap
// random-access index to hand out instead.
func ListDescriptorView[T any](l *list.List) []Descriptor[T] {
	out := make([]Descriptor[T], 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, ListDescriptor[T](e))
	}
	return out
}
