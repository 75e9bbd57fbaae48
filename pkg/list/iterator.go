package list

// Iterator is a bidirectional cursor over a List. It holds a non-owning
// reference to the list and re-reads the list's length on every call, so
// appends made mid-traversal become visible; removals invalidate the
// cursor position. An iterator must not be used after its list is
// destroyed.
type Iterator[T comparable] struct {
	list  *List[T]
	index int
}

// NewIterator creates an iterator positioned before the first element.
func (l *List[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// Next returns the element at the cursor and advances. Once the cursor
// reaches the end, or when the iterator's list is nil, it returns the
// zero value and false without moving.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= it.list.Len() {
		var zero T
		return zero, false
	}
	v := it.list.Get(it.index)
	it.index++
	return v, true
}

// Prev steps the cursor back and returns the element now under it. At the
// start, or when the iterator's list is nil, it returns the zero value
// and false without moving.
func (it *Iterator[T]) Prev() (T, bool) {
	if it.list == nil || it.index == 0 {
		var zero T
		return zero, false
	}
	it.index--
	return it.list.Get(it.index), true
}

// Clone returns an iterator on the same list at the same position. The
// two cursors move independently afterwards.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{list: it.list, index: it.index}
}
