// Package sortedset implements a comparator-ordered, deduplicating set
// backed by a skip list. It is the ordered collaborator consumed by the
// list package's set-conversion and set-filtering operations.
package sortedset

import (
	"github.com/listkit/listkit/pkg/common/random"
)

const (
	// maxHeight is the maximum height of the skip list
	maxHeight = 12

	// branching determines the probability of increasing a node's height
	branching = 4
)

// node is a skip list node. next[0] forms the full ascending chain.
type node[T any] struct {
	elem   T
	height int
	next   [maxHeight]*node[T]
}

// Set is a sorted set of elements deduplicated by a three-way comparator.
// Inserting an element that compares equal to a stored one keeps the
// stored element. An optional drop function runs once per element at
// Destroy. Not safe for concurrent use.
type Set[T any] struct {
	head   *node[T]
	height int
	size   int
	cmp    func(a, b T) int
	drop   func(T)
	rnd    random.Source
}

// New creates an empty set ordered by cmp. cmp must implement a strict
// weak ordering: negative for before, zero for equal, positive for after.
// Panics if cmp is nil.
func New[T any](cmp func(a, b T) int) *Set[T] {
	return NewWithDrop(cmp, nil)
}

// NewWithDrop creates an empty set ordered by cmp with a drop function
// that Destroy invokes once per stored element. Panics if cmp is nil.
func NewWithDrop[T any](cmp func(a, b T) int, drop func(T)) *Set[T] {
	if cmp == nil {
		panic("sortedset: nil comparator")
	}
	return &Set[T]{
		head:   &node[T]{height: maxHeight},
		height: 1,
		cmp:    cmp,
		drop:   drop,
		rnd:    random.Default(),
	}
}

// randomHeight rolls a height for a new node
func (s *Set[T]) randomHeight() int {
	height := 1
	for height < maxHeight && s.rnd.IntInRange(0, branching) == 0 {
		height++
	}
	return height
}

// find returns the node storing an element equal to v, or nil. When prev
// is non-nil it is filled, per level, with the rightmost node whose
// element orders before v; levels above the current height stay at head.
func (s *Set[T]) find(v T, prev *[maxHeight]*node[T]) *node[T] {
	current := s.head
	for level := s.height - 1; level >= 0; level-- {
		for next := current.next[level]; next != nil; next = current.next[level] {
			if s.cmp(next.elem, v) >= 0 {
				break
			}
			current = next
		}
		if prev != nil {
			prev[level] = current
		}
	}
	if candidate := current.next[0]; candidate != nil && s.cmp(candidate.elem, v) == 0 {
		return candidate
	}
	return nil
}

// Insert adds v to the set. It reports false, leaving the stored element
// in place, when an element equal to v is already present.
func (s *Set[T]) Insert(v T) bool {
	prev := [maxHeight]*node[T]{}
	for i := range prev {
		prev[i] = s.head
	}
	if s.find(v, &prev) != nil {
		return false
	}

	height := s.randomHeight()
	if height > s.height {
		s.height = height
	}

	n := &node[T]{elem: v, height: height}
	for level := 0; level < height; level++ {
		n.next[level] = prev[level].next[level]
		prev[level].next[level] = n
	}
	s.size++
	return true
}

// Search returns the stored element equal to v under the set's
// comparator. The stored element is returned, not v, so callers relying
// on comparator-equality across distinct values see what the set holds.
func (s *Set[T]) Search(v T) (T, bool) {
	if n := s.find(v, nil); n != nil {
		return n.elem, true
	}
	var zero T
	return zero, false
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	return s.find(v, nil) != nil
}

// Remove deletes and returns the stored element equal to v. The drop
// function is not invoked; ownership passes back to the caller.
func (s *Set[T]) Remove(v T) (T, bool) {
	prev := [maxHeight]*node[T]{}
	for i := range prev {
		prev[i] = s.head
	}
	n := s.find(v, &prev)
	if n == nil {
		var zero T
		return zero, false
	}
	for level := 0; level < n.height; level++ {
		if prev[level].next[level] == n {
			prev[level].next[level] = n.next[level]
		}
	}
	s.size--
	return n.elem, true
}

// Len returns the number of stored elements.
func (s *Set[T]) Len() int {
	return s.size
}

// SetDrop replaces the drop function invoked at Destroy.
func (s *Set[T]) SetDrop(drop func(T)) {
	s.drop = drop
}

// Destroy invokes the drop function, if any, on every stored element in
// ascending order, then releases the set's internal state. Safe to call
// on a nil set. Using the set after Destroy is undefined.
func (s *Set[T]) Destroy() {
	if s == nil {
		return
	}
	if s.drop != nil {
		for n := s.head.next[0]; n != nil; n = n.next[0] {
			s.drop(n.elem)
		}
	}
	s.head = &node[T]{height: maxHeight}
	s.height = 1
	s.size = 0
	s.drop = nil
}

// Iterator walks the set in ascending comparator order.
type Iterator[T any] struct {
	set     *Set[T]
	current *node[T]
}

// NewIterator creates an iterator positioned before the first element.
func (s *Set[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{set: s, current: s.head}
}

// Next returns the next element in ascending order, or the zero value and
// false once the set is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil || it.current.next[0] == nil {
		var zero T
		return zero, false
	}
	it.current = it.current.next[0]
	return it.current.elem, true
}

// Clone returns an iterator at the same position with an independent
// cursor.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{set: it.set, current: it.current}
}
