package cdll

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

var (
	ErrEmptyCollection        = errors.New("empty collection")
	ErrInvalidOperation       = errors.New("invalid operation")
	ErrNoSuchElement          = errors.New("no such element")
	ErrIllegalState           = errors.New("illegal state")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// Cyclic doubly linked list anchored by a non-removable sentinel node.
// The sentinel points to itself when the list is empty, so insertion and
// removal never special-case head or tail.
//
// The list is single-owner: it is not safe for concurrent mutation. The
// version counter exists so that cursors can detect structural changes
// made behind their back and fail fast instead of walking a stale chain.
func NewCircularList[T any]() *CircularList[T] {
	s := &node[T]{}
	s.prev, s.next = s, s
	return &CircularList[T]{
		sentinel: s,
		version:  atomic.NewInt64(0),
	}
}

// region CircularList

type CircularList[T any] struct {
	sentinel *node[T]
	size     int
	version  *atomic.Int64
}

func (l *CircularList[T]) Len() int {
	return l.size
}

func (l *CircularList[T]) IsEmpty() bool {
	return l.size == 0
}

// AddFirst inserts v immediately after the sentinel.
func (l *CircularList[T]) AddFirst(v T) {
	l.insertBetween(v, l.sentinel, l.sentinel.next)
}

// AddLast inserts v immediately before the sentinel.
func (l *CircularList[T]) AddLast(v T) {
	l.insertBetween(v, l.sentinel.prev, l.sentinel)
}

// insertBetween is the single insertion path. Every insert, boundary or
// interior, list-initiated or cursor-initiated, goes through here; it is
// the only place size grows and one of the two places version moves.
func (l *CircularList[T]) insertBetween(v T, left, right *node[T]) *node[T] {
	n := &node[T]{value: v, prev: left, next: right}
	left.next = n
	right.prev = n
	l.size++
	l.version.Inc()
	return n
}

// RemoveFirst unlinks and returns the first element.
func (l *CircularList[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	v := l.sentinel.next.value
	_ = l.removeNode(l.sentinel.next)
	return v, nil
}

// RemoveLast unlinks and returns the last element.
func (l *CircularList[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	v := l.sentinel.prev.value
	_ = l.removeNode(l.sentinel.prev)
	return v, nil
}

// First returns the first element without removing it.
func (l *CircularList[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return l.sentinel.next.value, nil
}

// Last returns the last element without removing it.
func (l *CircularList[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return l.sentinel.prev.value, nil
}

// Values walks the chain forward once and returns the element values in
// order.
func (l *CircularList[T]) Values() []T {
	vs := make([]T, 0, l.size)
	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		vs = append(vs, n.value)
	}

	return vs
}

// removeNode is the single removal path, shared with cursor removal.
func (l *CircularList[T]) removeNode(n *node[T]) error {
	if n == l.sentinel {
		return ErrInvalidOperation
	}

	n.unlink()
	l.size--
	l.version.Inc()
	return nil
}

// Cursor returns a new cursor positioned before the first element. The
// cursor snapshots the current version; any structural change to the list
// after this point, through the list or through another cursor, makes every
// operation on it fail with ErrConcurrentModification.
func (l *CircularList[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{
		list:            l,
		lastReturned:    l.sentinel,
		next:            l.sentinel.next,
		expectedVersion: l.version.Load(),
	}
}

// endregion
