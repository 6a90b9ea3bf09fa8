package cdll

// region Cursor

// Cursor is a bidirectional, position-aware handle over a CircularList.
//
// It keeps two node pointers: next, the node a forward step would return,
// and lastReturned, the node whose value the most recent Next/Previous call
// yielded. lastReturned is what makes Remove and Set legal without
// re-scanning; it is reset to the sentinel ("nothing yielded") by Insert and
// Remove, after which Remove and Set fail with ErrIllegalState until the
// next traversal step.
//
// Every operation, including the read-only ones, first compares the list's
// live version against the snapshot taken at the cursor's last validated
// mutation. On mismatch it fails with ErrConcurrentModification and leaves
// both the cursor and the list untouched.
type Cursor[T any] struct {
	list            *CircularList[T]
	lastReturned    *node[T] // sentinel means nothing yielded yet
	next            *node[T]
	nextIndex       int
	expectedVersion int64
}

func (c *Cursor[T]) checkVersion() error {
	if c.expectedVersion != c.list.version.Load() {
		return ErrConcurrentModification
	}

	return nil
}

func (c *Cursor[T]) HasNext() (bool, error) {
	if err := c.checkVersion(); err != nil {
		return false, err
	}

	return c.nextIndex < c.list.size, nil
}

// Next yields the next element and advances the cursor past it.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if err := c.checkVersion(); err != nil {
		return zero, err
	}

	if c.nextIndex >= c.list.size {
		return zero, ErrNoSuchElement
	}

	c.lastReturned = c.next
	c.next = c.next.next
	c.nextIndex++
	return c.lastReturned.value, nil
}

func (c *Cursor[T]) HasPrevious() (bool, error) {
	if err := c.checkVersion(); err != nil {
		return false, err
	}

	return c.nextIndex > 0, nil
}

// Previous yields the element before the cursor and moves the cursor back
// over it. Previous and Next are exact inverses: one followed by the other
// returns the same value and restores the position.
func (c *Cursor[T]) Previous() (T, error) {
	var zero T
	if err := c.checkVersion(); err != nil {
		return zero, err
	}

	if c.nextIndex <= 0 {
		return zero, ErrNoSuchElement
	}

	c.next = c.next.prev
	c.lastReturned = c.next
	c.nextIndex--
	return c.lastReturned.value, nil
}

// NextIndex returns the index of the element a Next call would yield.
func (c *Cursor[T]) NextIndex() (int, error) {
	if err := c.checkVersion(); err != nil {
		return 0, err
	}

	return c.nextIndex, nil
}

// PreviousIndex returns the index of the element a Previous call would
// yield, -1 when the cursor sits before the first element.
func (c *Cursor[T]) PreviousIndex() (int, error) {
	if err := c.checkVersion(); err != nil {
		return 0, err
	}

	return c.nextIndex - 1, nil
}

// Peek returns what Next would return, without moving the cursor.
func (c *Cursor[T]) Peek() (T, error) {
	var zero T
	if err := c.checkVersion(); err != nil {
		return zero, err
	}

	if c.nextIndex >= c.list.size {
		return zero, ErrNoSuchElement
	}

	return c.next.value, nil
}

// PeekPrevious returns what Previous would return, without moving the
// cursor.
func (c *Cursor[T]) PeekPrevious() (T, error) {
	var zero T
	if err := c.checkVersion(); err != nil {
		return zero, err
	}

	if c.nextIndex <= 0 {
		return zero, ErrNoSuchElement
	}

	return c.next.prev.value, nil
}

// Insert adds v immediately before the cursor position; the new element is
// treated as already passed, so a following Previous yields it and a
// following Next is unaffected. Insert resets lastReturned, so Remove and
// Set are illegal until the next traversal step. Back-to-back Inserts are
// fine. The cursor re-snapshots the version after its own edit and stays
// valid; every other live cursor on the list is invalidated.
func (c *Cursor[T]) Insert(v T) error {
	if err := c.checkVersion(); err != nil {
		return err
	}

	c.list.insertBetween(v, c.next.prev, c.next)
	c.lastReturned = c.list.sentinel
	c.nextIndex++
	c.expectedVersion = c.list.version.Load()
	return nil
}

// Remove unlinks the element the last Next or Previous call yielded. When
// that element was reached by Previous it is still the cursor's next node,
// so the cursor steps over it; when it was reached by Next the logical
// position shifts back by one instead.
func (c *Cursor[T]) Remove() error {
	if err := c.checkVersion(); err != nil {
		return err
	}

	if c.lastReturned == c.list.sentinel {
		return ErrIllegalState
	}

	removed := c.lastReturned
	_ = c.list.removeNode(removed)
	if removed == c.next {
		c.next = c.next.next
	} else {
		c.nextIndex--
	}

	c.lastReturned = c.list.sentinel
	c.expectedVersion = c.list.version.Load()
	return nil
}

// Set overwrites, in place, the value of the element the last Next or
// Previous call yielded. Not a structural edit: size and version are
// untouched and other live cursors stay valid.
func (c *Cursor[T]) Set(v T) error {
	if err := c.checkVersion(); err != nil {
		return err
	}

	if c.lastReturned == c.list.sentinel {
		return ErrIllegalState
	}

	c.lastReturned.value = v
	return nil
}

// endregion
