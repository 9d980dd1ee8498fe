package handoff

// Container is the storage policy behind a [Slot]: a cell holding zero or
// one value of type T.
//
// The package ships two policies, [Tracked] and [Raw]; custom ones go in
// through [WithContainer] and must satisfy this contract:
//
//   - The zero value of the implementation is the empty state.
//   - Fill stores v and moves the cell to the filled state. Filling an
//     already-filled cell replaces the stored value; what becomes of the
//     old value is the implementation's documented policy.
//   - Unpack extracts the most recently filled value, consuming the
//     storage. Unpack on an empty cell violates the contract: an
//     implementation may panic or may return an unspecified value, but it
//     must not corrupt anything.
//
// Inside the package, [Slot.Unlock] is the only caller of Unpack, and it
// demands a [Proof] of a prior Fill first, so the empty-Unpack case cannot
// be reached without driving a container by hand.
type Container[T any] interface {
	Fill(v T)
	Unpack() T
}

// Tracked is the checked [Container]: it tracks whether a value is present
// and fails loudly when asked for one that isn't.
//
// Fill drops the cell's reference to any previously stored value at the
// moment of replacement. Unpack resets the cell to empty, so nothing stays
// referenced after extraction.
type Tracked[T any] struct {
	val    T
	filled bool
}

// Fill stores v, replacing any previously stored value.
func (c *Tracked[T]) Fill(v T) {
	c.val = v
	c.filled = true
}

// Unpack returns the stored value and empties the cell.
// It panics if nothing has been filled.
func (c *Tracked[T]) Unpack() T {
	if !c.filled {
		panic("handoff: Unpack of empty Tracked container")
	}
	v := c.val
	var zero T
	c.val = zero
	c.filled = false
	return v
}

// Raw is the unchecked [Container]: a bare cell with no presence flag.
//
// Its storage is exactly the size of T; Fill is a plain write and Unpack a
// plain read. Unpack on a never-filled cell returns the zero value of T,
// which the protocol treats as unspecified and which is reachable only by
// driving the cell directly. Unlike [Tracked], Unpack does not clear the
// cell, so the last stored value stays referenced until the cell itself is
// collected.
type Raw[T any] struct {
	val T
}

// Fill stores v, replacing any previously stored value.
func (c *Raw[T]) Fill(v T) {
	c.val = v
}

// Unpack returns whatever the cell currently holds.
func (c *Raw[T]) Unpack() T {
	return c.val
}
