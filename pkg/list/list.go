// Package list implements a resizable sequence container with
// amortized-growth appending, in-place mutation, sorting, filtering, and
// conversion into the sortedset collaborator. The container owns its
// backing storage; element teardown is governed by an optional drop
// function that runs only at Destroy. Not safe for concurrent use.
//
// Index preconditions are contract violations, not recoverable errors:
// out-of-range access, popping or peeking an empty list, a negative
// initial length, and appending a list into itself all panic.
package list

import (
	"fmt"
	"sort"

	"github.com/listkit/listkit/pkg/common/random"
	"github.com/listkit/listkit/pkg/sortedset"
)

// minExpand is the minimum number of slots added when the backing array
// grows, so small lists do not reallocate once per append.
const minExpand = 5

// List is a resizable sequence of elements. The zero-capacity list from
// New is ready for use. Elements compare by ==, so the element type must
// be comparable; for pointer elements this is identity comparison.
type List[T comparable] struct {
	// elems holds the live elements: len(elems) is the logical length,
	// cap(elems) the allocated capacity.
	elems []T
	drop  func(T)
}

// New creates an empty list with no capacity and no drop function.
func New[T comparable]() *List[T] {
	return NewWithLength[T](0)
}

// NewWithLength creates a list of n zero-valued elements, with capacity
// equal to n. Panics if n is negative.
func NewWithLength[T comparable](n int) *List[T] {
	if n < 0 {
		panic(fmt.Sprintf("list: negative length %d", n))
	}
	return &List[T]{elems: make([]T, n)}
}

// NewWithDrop creates a list of n zero-valued elements with a drop
// function that Destroy invokes once per live element. Panics if n is
// negative.
func NewWithDrop[T comparable](n int, drop func(T)) *List[T] {
	l := NewWithLength[T](n)
	l.drop = drop
	return l
}

// Len returns the number of elements. A nil list has length 0; this is
// the one operation tolerant of a nil receiver.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// Cap returns the allocated capacity, always >= Len.
func (l *List[T]) Cap() int {
	return cap(l.elems)
}

// checkIndex panics unless 0 <= i < Len.
func (l *List[T]) checkIndex(i int) {
	if i < 0 || i >= len(l.elems) {
		panic(fmt.Sprintf("list: index %d out of range [0, %d)", i, len(l.elems)))
	}
}

// Get returns the element at index i. Panics if i is out of range.
func (l *List[T]) Get(i int) T {
	l.checkIndex(i)
	return l.elems[i]
}

// Set overwrites the element at index i. The previous element is
// discarded without invoking the drop function. Panics if i is out of
// range.
func (l *List[T]) Set(i int, v T) {
	l.checkIndex(i)
	l.elems[i] = v
}

// Append adds v at the end. When the list is full the backing array is
// reallocated to cap*2+minExpand slots and the elements are copied over,
// so a run of N appends does O(N) total reallocation work.
func (l *List[T]) Append(v T) {
	n := len(l.elems)
	if n == cap(l.elems) {
		grown := make([]T, n, cap(l.elems)*2+minExpand)
		copy(grown, l.elems)
		l.elems = grown
	}
	l.elems = l.elems[:n+1]
	l.elems[n] = v
}

// AppendAll appends every element of src, in order. The two lists must be
// distinct; appending a list into itself panics. A nil src is treated as
// empty.
func (l *List[T]) AppendAll(src *List[T]) {
	if src == l {
		panic("list: AppendAll of a list into itself")
	}
	for i := 0; i < src.Len(); i++ {
		l.Append(src.Get(i))
	}
}

// SetDrop replaces the drop function invoked at Destroy.
func (l *List[T]) SetDrop(drop func(T)) {
	l.drop = drop
}

// Remove deletes and returns the element at index i, shifting later
// elements one position earlier. The drop function is not invoked;
// ownership passes back to the caller. O(Len-i). Panics if i is out of
// range.
func (l *List[T]) Remove(i int) T {
	l.checkIndex(i)
	v := l.elems[i]
	copy(l.elems[i:], l.elems[i+1:])
	last := len(l.elems) - 1
	var zero T
	l.elems[last] = zero
	l.elems = l.elems[:last]
	return v
}

// RemoveFirst deletes and returns the element at index 0. Panics if the
// list is empty.
func (l *List[T]) RemoveFirst() T {
	return l.Remove(0)
}

// Pop deletes and returns the last element. Panics if the list is empty.
func (l *List[T]) Pop() T {
	if len(l.elems) == 0 {
		panic("list: Pop of empty list")
	}
	return l.Remove(len(l.elems) - 1)
}

// RemoveItem deletes the first element equal to v and reports whether one
// was found.
func (l *List[T]) RemoveItem(v T) bool {
	for i, e := range l.elems {
		if e == v {
			l.Remove(i)
			return true
		}
	}
	return false
}

// Peek returns the last element without removing it. Panics if the list
// is empty.
func (l *List[T]) Peek() T {
	if len(l.elems) == 0 {
		panic("list: Peek of empty list")
	}
	return l.elems[len(l.elems)-1]
}

// Contains reports whether some element equals v.
func (l *List[T]) Contains(v T) bool {
	for _, e := range l.elems {
		if e == v {
			return true
		}
	}
	return false
}

// Copy returns a new list holding the same elements in the same order,
// with drop attached to the copy. The receiver is unaffected.
func (l *List[T]) Copy(drop func(T)) *List[T] {
	c := NewWithDrop[T](0, drop)
	c.AppendAll(l)
	return c
}

// Reverse reverses the element order in place.
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.elems)-1; i < j; i, j = i+1, j-1 {
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}
}

// Sort reorders the elements in place by the three-way comparator cmp:
// negative for before, zero for equal, positive for after. cmp must be a
// strict weak ordering. The sort is not stable.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	sort.Slice(l.elems, func(i, j int) bool {
		return cmp(l.elems[i], l.elems[j]) < 0
	})
}

// Shuffle permutes the elements in place using the process-wide random
// source.
func (l *List[T]) Shuffle() {
	l.ShuffleSource(random.Default())
}

// ShuffleSource permutes the elements in place, swapping each index in
// turn with a partner drawn uniformly from the full [0, Len) range. The
// full-range draw is kept for compatibility with long-standing behavior:
// it is not the Fisher-Yates scheme and does not produce a uniform
// permutation.
func (l *List[T]) ShuffleSource(src random.Source) {
	for i := range l.elems {
		j := src.IntInRange(0, len(l.elems))
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}
}

// ToSortedSet builds a sorted set from all elements under cmp. Elements
// that compare equal collapse to the first one inserted. The list is
// unaffected and no drop function is attached to the set.
func (l *List[T]) ToSortedSet(cmp func(a, b T) int) *sortedset.Set[T] {
	s := sortedset.New(cmp)
	for _, e := range l.elems {
		s.Insert(e)
	}
	return s
}

// Filter returns a new list holding, in order, the elements for which
// pred is true. No drop function is attached to the result.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	out := New[T]()
	for _, e := range l.elems {
		if pred(e) {
			out.Append(e)
		}
	}
	return out
}

// FilterToInclude returns a new list holding, in order, the elements
// present in set under the set's comparator.
func (l *List[T]) FilterToInclude(set *sortedset.Set[T]) *List[T] {
	return l.filterBySet(set, true)
}

// FilterToExclude returns a new list holding, in order, the elements
// absent from set under the set's comparator.
func (l *List[T]) FilterToExclude(set *sortedset.Set[T]) *List[T] {
	return l.filterBySet(set, false)
}

func (l *List[T]) filterBySet(set *sortedset.Set[T], include bool) *List[T] {
	out := New[T]()
	for _, e := range l.elems {
		if set.Contains(e) == include {
			out.Append(e)
		}
	}
	return out
}

// Join returns a new list concatenating, in order, every list held by
// lists.
func Join[T comparable](lists *List[*List[T]]) *List[T] {
	joined := New[T]()
	for i := 0; i < lists.Len(); i++ {
		joined.AppendAll(lists.Get(i))
	}
	return joined
}

// ConvertToSortedSet destructively converts the list into a sorted set
// ordered by cmp. The list's drop function transfers to the set, the list
// is destroyed, and the set becomes the sole owner of element teardown.
// Using the list afterwards is undefined.
func (l *List[T]) ConvertToSortedSet(cmp func(a, b T) int) *sortedset.Set[T] {
	s := l.ToSortedSet(cmp)
	s.SetDrop(l.drop)
	l.SetDrop(nil)
	l.Destroy()
	return s
}

// Destroy invokes the drop function, if any, once on each live element in
// index order, then releases the backing storage. Safe to call on a nil
// list. Using the list after Destroy is undefined.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}
	if l.drop != nil {
		for _, e := range l.elems {
			l.drop(e)
		}
	}
	l.elems = nil
	l.drop = nil
}
