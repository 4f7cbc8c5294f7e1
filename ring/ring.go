// Package ring implements a circular doubly-linked list.
package ring

// A Ring is an element of a circular list. A nil *Ring represents an empty
// ring. Rings are constructed with New or Of; a zero Ring value has nil
// links and is not a usable ring element.
type Ring[T any] struct {
	next, prev *Ring[T]
	Value      T
}

// New constructs a ring of n elements, each with a zero Value. It returns
// nil if n <= 0.
func New[T any](n int) *Ring[T] {
	if n <= 0 {
		return nil
	}
	r := new(Ring[T])
	p := r
	for range n - 1 {
		p.next = &Ring[T]{prev: p}
		p = p.next
	}
	p.next = r
	r.prev = p
	return r
}

// Of constructs a ring containing vs, in order. It returns nil if vs is
// empty.
func Of[T any](vs ...T) *Ring[T] {
	r := New[T](len(vs))
	p := r
	for _, v := range vs {
		p.Value = v
		p = p.next
	}
	return r
}

// Next returns the next element in the ring after r.
func (r *Ring[T]) Next() *Ring[T] {
	if r == nil {
		return nil
	}
	return r.next
}

// Prev returns the previous element in the ring before r.
func (r *Ring[T]) Prev() *Ring[T] {
	if r == nil {
		return nil
	}
	return r.prev
}

// At returns the element n steps around the ring from r: forward if n is
// positive, backward if n is negative.
func (r *Ring[T]) At(n int) *Ring[T] {
	if r == nil {
		return nil
	}
	p := r
	for range abs(n) {
		if n >= 0 {
			p = p.next
		} else {
			p = p.prev
		}
	}
	return p
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Peek reports whether n is a valid offset into r's ring, treating a
// negative n as an offset from the end (as in Peek(-1) == Peek(Len()-1)),
// and if so returns the Value at that offset.
func (r *Ring[T]) Peek(n int) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	size := r.Len()
	m := n
	if m < 0 {
		m += size
	}
	if m < 0 || m >= size {
		return zero, false
	}
	return r.At(m).Value, true
}

// Join links r with ring s such that r.Next() becomes s, and returns the
// original value of r.Next(). If s and r belong to the same ring, the
// elements between them (exclusive of r and s) are spliced out into a
// separate ring, whose head is the return value.
//
// Joining r to nil, or to r itself, leaves r unchanged and returns
// r.Next().
func (r *Ring[T]) Join(s *Ring[T]) *Ring[T] {
	if r == nil {
		return nil
	}
	n := r.next
	if s == nil || s == r {
		return n
	}
	if n == s {
		return nil // no elements lie between r and s
	}
	p := s.prev
	r.next = s
	s.prev = r
	n.prev = p
	p.next = n
	return n
}

// Pop unlinks r from its ring, leaving the rest of the ring intact, and
// returns r as a singleton ring. If r is already alone, Pop does nothing
// and returns r.
func (r *Ring[T]) Pop() *Ring[T] {
	if r == nil || r.next == r {
		return r
	}
	p, n := r.prev, r.next
	p.next = n
	n.prev = p
	r.next, r.prev = r, r
	return r
}

// Len reports the number of elements in r's ring. This operation takes time
// linear in the size of the ring.
func (r *Ring[T]) Len() int {
	if r == nil {
		return 0
	}
	n := 1
	for p := r.next; p != r; p = p.next {
		n++
	}
	return n
}

// IsEmpty reports whether r is an empty ring.
func (r *Ring[T]) IsEmpty() bool { return r == nil }

// Clear unlinks every element from r's ring, leaving each a singleton.
func (r *Ring[T]) Clear() {
	if r == nil {
		return
	}
	p := r.next
	for p != r {
		next := p.next
		p.next, p.prev = p, p
		p = next
	}
	r.next, r.prev = r, r
}

// Each is a range function that calls f with the Value of every element in
// r's ring, starting at r, in order. If f returns false, Each returns
// immediately.
func (r *Ring[T]) Each(f func(T) bool) {
	if r == nil {
		return
	}
	p := r
	for {
		if !f(p.Value) {
			return
		}
		p = p.next
		if p == r {
			return
		}
	}
}
