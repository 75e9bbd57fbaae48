// Package hashset implements an unordered set with pluggable hash and
// equality functions, so identity sets and value-equality sets coexist
// over the same element type. An optional drop function governs element
// teardown at Destroy. Not safe for concurrent use.
package hashset

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"

	"github.com/listkit/listkit/pkg/list"
)

// StringHash hashes a string with xxhash. Suited to value-equality sets
// keyed by a string field.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes a byte slice with xxhash, for hash functions derived
// from a serialized field of the element.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Set is an unordered set. Membership is decided by the set's equality
// function over elements in the bucket selected by the hash function;
// the two must agree (equal elements must hash identically).
type Set[T comparable] struct {
	buckets map[uint64][]T
	hash    func(T) uint64
	equals  func(a, b T) bool
	drop    func(T)
	size    int
}

// New creates a set with identity semantics: elements hash by value via
// maphash and compare with ==.
func New[T comparable]() *Set[T] {
	seed := maphash.MakeSeed()
	return NewFunc(
		func(v T) uint64 { return maphash.Comparable(seed, v) },
		func(a, b T) bool { return a == b },
	)
}

// NewWithDrop creates an identity-semantics set with a drop function that
// Destroy invokes once per stored element.
func NewWithDrop[T comparable](drop func(T)) *Set[T] {
	s := New[T]()
	s.drop = drop
	return s
}

// NewFunc creates a set with caller-supplied hash and equality functions.
// Panics if either is nil.
func NewFunc[T comparable](hash func(T) uint64, equals func(a, b T) bool) *Set[T] {
	return NewFuncWithDrop(hash, equals, nil)
}

// NewFuncWithDrop creates a set with caller-supplied hash, equality, and
// drop functions. Panics if hash or equals is nil.
func NewFuncWithDrop[T comparable](hash func(T) uint64, equals func(a, b T) bool, drop func(T)) *Set[T] {
	if hash == nil || equals == nil {
		panic("hashset: nil hash or equality function")
	}
	return &Set[T]{
		buckets: make(map[uint64][]T),
		hash:    hash,
		equals:  equals,
		drop:    drop,
	}
}

// Insert adds v to the set. It reports false, leaving the stored element
// in place, when an element equal to v is already present.
func (s *Set[T]) Insert(v T) bool {
	h := s.hash(v)
	for _, e := range s.buckets[h] {
		if s.equals(e, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.size++
	return true
}

// Search returns the stored element equal to v under the set's equality
// function. For value-equality sets this may be a different instance than
// v.
func (s *Set[T]) Search(v T) (T, bool) {
	for _, e := range s.buckets[s.hash(v)] {
		if s.equals(e, v) {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.Search(v)
	return ok
}

// Remove deletes and returns the stored element equal to v. The drop
// function is not invoked; ownership passes back to the caller.
func (s *Set[T]) Remove(v T) (T, bool) {
	h := s.hash(v)
	bucket := s.buckets[h]
	for i, e := range bucket {
		if s.equals(e, v) {
			s.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			if len(s.buckets[h]) == 0 {
				delete(s.buckets, h)
			}
			s.size--
			return e, true
		}
	}
	var zero T
	return zero, false
}

// RemoveAndDrop deletes the stored element equal to v and invokes the
// drop function on it. It reports whether an element was removed.
func (s *Set[T]) RemoveAndDrop(v T) bool {
	e, ok := s.Remove(v)
	if ok && s.drop != nil {
		s.drop(e)
	}
	return ok
}

// Len returns the number of stored elements.
func (s *Set[T]) Len() int {
	return s.size
}

// SetDrop replaces the drop function invoked at Destroy.
func (s *Set[T]) SetDrop(drop func(T)) {
	s.drop = drop
}

// Keys returns a new list holding every stored element. The order is
// unspecified. No drop function is attached to the result.
func (s *Set[T]) Keys() *list.List[T] {
	keys := list.New[T]()
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			keys.Append(e)
		}
	}
	return keys
}

// emptyLike returns an empty set sharing the receiver's hash and equality
// functions. Results of set algebra carry no drop function.
func (s *Set[T]) emptyLike() *Set[T] {
	return NewFunc(s.hash, s.equals)
}

// Union returns a new set holding every element of s and o. Both sets
// must share hash and equality semantics; the result uses the receiver's
// functions.
func (s *Set[T]) Union(o *Set[T]) *Set[T] {
	out := s.emptyLike()
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			out.Insert(e)
		}
	}
	for _, bucket := range o.buckets {
		for _, e := range bucket {
			out.Insert(e)
		}
	}
	return out
}

// Intersection returns a new set holding the elements of s also present
// in o. Both sets must share hash and equality semantics.
func (s *Set[T]) Intersection(o *Set[T]) *Set[T] {
	out := s.emptyLike()
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if o.Contains(e) {
				out.Insert(e)
			}
		}
	}
	return out
}

// Difference returns a new set holding the elements of s absent from o.
// Both sets must share hash and equality semantics.
func (s *Set[T]) Difference(o *Set[T]) *Set[T] {
	out := s.emptyLike()
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if !o.Contains(e) {
				out.Insert(e)
			}
		}
	}
	return out
}

// Destroy invokes the drop function, if any, on every stored element,
// then releases the set's internal state. Safe to call on a nil set.
// Using the set after Destroy is undefined.
func (s *Set[T]) Destroy() {
	if s == nil {
		return
	}
	if s.drop != nil {
		for _, bucket := range s.buckets {
			for _, e := range bucket {
				s.drop(e)
			}
		}
	}
	s.buckets = make(map[uint64][]T)
	s.size = 0
	s.drop = nil
}

// Iterator walks the set in unspecified order over a snapshot taken at
// creation. Mutating the set mid-traversal does not affect an existing
// iterator.
type Iterator[T comparable] struct {
	elems []T
	index int
}

// NewIterator creates an iterator over a snapshot of the current
// elements.
func (s *Set[T]) NewIterator() *Iterator[T] {
	elems := make([]T, 0, s.size)
	for _, bucket := range s.buckets {
		elems = append(elems, bucket...)
	}
	return &Iterator[T]{elems: elems}
}

// Next returns the next element, or the zero value and false once the
// snapshot is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= len(it.elems) {
		var zero T
		return zero, false
	}
	v := it.elems[it.index]
	it.index++
	return v, true
}

// Clone returns an iterator over the same snapshot at the same position,
// with an independent cursor.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{elems: it.elems, index: it.index}
}
