// Package slice implements some useful functions for slices.
package slice

import "iter"

// Partition rearranges the elements of vs in-place so that all the elements v
// for which keep(v) is true precede all those for which it is false, and
// returns the prefix of vs containing the kept elements. It takes time
// proportional to len(vs) and does not allocate storage outside the slice.
//
// The input order of the kept elements is preserved, but the unkept elements
// are permuted arbitrarily. For example, given the input:
//
//	[6, 1, 3, 2, 8, 4, 5]
//
// and
//
//	func keep(v int) bool { return v%2 == 0 }
//
// the resulting partition is [6, 2, 8, 4], and the remainder of vs (now
// beyond the returned slice's length) contains 1, 3, and 5 in unspecified
// order.
//
// The returned slice is clipped so that appending to it does not overwrite
// the unkept elements still stored in vs.
func Partition[V any](vs []V, keep func(V) bool) []V {
	n := len(vs)

	// Invariant: Everything to the left of i is kept.
	// Initialize left cursor (i) by scanning forward for an unkept element.
	i := 0
	for i < n && keep(vs[i]) {
		i++
	}
	// Initialize right cursor (j). If there is an out-of-place kept element,
	// it must be after i.
	j := i + 1

	for i < n && j < n {
		// Right: Scan forward for a kept element.
		for !keep(vs[j]) {
			j++

			// If the right cursor reached the end, we're done: Everything left
			// of i is kept, everything ≥ i is unkept.
			if j == n {
				return vs[:i:i]
			}
		}

		// Reaching here, the elements under both cursors are out of
		// order. Swap to put them in order, then advance the cursors.
		vs[i], vs[j] = vs[j], vs[i]
		i++
		j++
	}
	return vs[:i:i]
}

// Zero overwrites each element of vs with its zero value.
func Zero[T any](vs []T) {
	var zero T
	for i := range vs {
		vs[i] = zero
	}
}

// MapKeys returns the keys of m in unspecified order, or nil if m is empty.
func MapKeys[K comparable, V any, T ~map[K]V](m T) []K {
	if len(m) == 0 {
		return nil
	}
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// MatchingKeys returns an iterator over the keys of m whose values satisfy
// keep.
func MatchingKeys[K comparable, V any](m map[K]V, keep func(V) bool) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, v := range m {
			if keep(v) && !yield(k) {
				return
			}
		}
	}
}

// Rotate rotates the elements of vs in-place by k positions. A positive k
// rotates right (the last k elements move to the front); a negative k
// rotates left. Rotate is a no-op for an empty or single-element slice.
func Rotate[T any](vs []T, k int) {
	n := len(vs)
	if n <= 1 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	reverse(vs)
	reverse(vs[:k])
	reverse(vs[k:])
}

func reverse[T any](vs []T) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// Reverse reverses the elements of vs in-place.
func Reverse[T any](vs []T) { reverse(vs) }

// resolve maps a possibly-negative index k into a 0-based offset into a
// slice of length n, using Python-style negative indexing (-1 is the last
// element). It reports whether the result lies in [0, n).
func resolve(k, n int) (int, bool) {
	if k < 0 {
		k += n
	}
	return k, k >= 0 && k < n
}

// At returns the element of vs at index k, which may be negative to count
// from the end of vs (-1 is the last element). At panics if the resolved
// index is out of range.
func At[T any](vs []T, k int) T {
	idx, ok := resolve(k, len(vs))
	if !ok {
		panic("slice.At: index out of range")
	}
	return vs[idx]
}

// PtrAt returns a pointer to the element of vs at index k, under the same
// indexing rules as [At], or nil if the resolved index is out of range.
func PtrAt[T any](vs []T, k int) *T {
	idx, ok := resolve(k, len(vs))
	if !ok {
		return nil
	}
	return &vs[idx]
}

// Chunks returns an iterator over consecutive non-overlapping subslices of
// vs, each of length n except possibly the last, which may be shorter.
// Chunks panics if n < 0. If n == 0 or vs is empty, the iterator yields
// nothing.
func Chunks[T any, Slice ~[]T](vs Slice, n int) iter.Seq[Slice] {
	if n < 0 {
		panic("slice.Chunks: n must be non-negative")
	}
	return func(yield func(Slice) bool) {
		if n == 0 {
			return
		}
		for i := 0; i < len(vs); i += n {
			end := min(i+n, len(vs))
			if !yield(vs[i:end]) {
				return
			}
		}
	}
}

// Batches returns an iterator over n roughly-equal-sized, non-overlapping
// subslices of vs that together cover vs in order. If n is greater than
// len(vs), it is treated as len(vs) (each batch has a single element).
// Batches panics if n < 0. If n == 0 or vs is empty, the iterator yields
// nothing.
func Batches[T any, Slice ~[]T](vs Slice, n int) iter.Seq[Slice] {
	if n < 0 {
		panic("slice.Batches: n must be non-negative")
	}
	return func(yield func(Slice) bool) {
		if n == 0 || len(vs) == 0 {
			return
		}
		neff := min(n, len(vs))
		base, extra := len(vs)/neff, len(vs)%neff
		i := 0
		for b := 0; b < neff; b++ {
			size := base
			if b < extra {
				size++
			}
			if !yield(vs[i : i+size]) {
				return
			}
			i += size
		}
	}
}

// Stripe returns the i-th column of the ragged 2D slice vs, taking the
// element at index i from each row that has one, in row order, and skipping
// rows too short to have an element at i.
func Stripe[T any](vs [][]T, i int) []T {
	var out []T
	for _, row := range vs {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}

// Head returns the first n elements of vs, clamped to len(vs). Head panics
// if n < 0.
func Head[T any](vs []T, n int) []T {
	if n < 0 {
		panic("slice.Head: n must be non-negative")
	}
	return vs[:min(n, len(vs))]
}

// Tail returns the last n elements of vs, clamped to len(vs). Tail panics if
// n < 0.
func Tail[T any](vs []T, n int) []T {
	if n < 0 {
		panic("slice.Tail: n must be non-negative")
	}
	n = min(n, len(vs))
	return vs[len(vs)-n:]
}

// Select returns an iterator over the elements of vs for which keep reports
// true, preserving order. Unlike Partition, Select does not modify vs.
func Select[T any](vs []T, keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map applies f to each element of vs and returns the resulting slice. Map
// returns nil if vs is nil.
func Map[T, U any](vs []T, f func(T) U) []U {
	if vs == nil {
		return nil
	}
	out := make([]U, len(vs))
	for i, v := range vs {
		out[i] = f(v)
	}
	return out
}

// Dedup removes consecutive runs of equal elements from vs in-place,
// keeping the first element of each run, and returns the deduplicated
// prefix of vs.
func Dedup[T comparable](vs []T) []T {
	if len(vs) == 0 {
		return vs
	}
	i := 0
	for j := 1; j < len(vs); j++ {
		if vs[j] != vs[i] {
			i++
			vs[i] = vs[j]
		}
	}
	return vs[:i+1]
}

// Split divides vs at index n, returning the prefix and suffix. Split
// panics if n is out of [0, len(vs)].
func Split[T any](vs []T, n int) (lhs, rhs []T) {
	return vs[:n], vs[n:]
}
