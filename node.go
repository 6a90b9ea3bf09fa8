package cdll

// region Node

// node is a single link in the cycle. The sentinel is a node whose value is
// never read; an empty list is the sentinel linked to itself in both
// directions, so every node in a non-empty list always has live neighbors.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// unlink splices n out of its cycle. Must not be called on the sentinel.
// n keeps its own prev/next pointers but is no longer reachable from the
// list and must not be relinked.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// endregion
