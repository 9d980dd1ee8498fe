package handoff

import "sync/atomic"

// brandSeq mints slot identities. Identities start at 1 so the zero Slot
// and the zero Proof can never match a live slot. A counter rather than the
// cell's address: distinct zero-size allocations may share an address, and
// a counter is never reissued after a slot dies.
var brandSeq atomic.Uint64

// Slot is a single-value cell scoped to one callback invocation.
//
// A Slot is created empty by [With], [WithRaw], or [WithContainer], filled
// by [Slot.Fill], and consumed by [Slot.Unlock]. Creation tags the slot
// with an identity unique to that one introduction; the [Proof] returned by
// Fill carries the same identity, and Unlock accepts no other.
//
// A Slot lives on one goroutine for the duration of one call. It is not
// safe for concurrent use and must not be copied or retained after the
// callback that received it returns. The zero Slot is unusable.
type Slot[T any] struct {
	cell  Container[T] // nil once the slot is consumed
	brand uint64
}

// With calls fn with a fresh, empty [Slot] backed by a [Tracked] container
// and returns fn's result. This is the default way to introduce a slot.
func With[T, R any](fn func(*Slot[T]) R) R {
	return WithContainer(&Tracked[T]{}, fn)
}

// WithRaw calls fn with a fresh, empty [Slot] backed by a [Raw] container
// and returns fn's result.
//
// This is the low-level variant: the cell carries no presence flag, so
// nothing beneath the Proof protocol checks that a fill happened. Prefer
// [With] unless the flag's extra word and branch have been measured to
// matter.
func WithRaw[T, R any](fn func(*Slot[T]) R) R {
	return WithContainer(&Raw[T]{}, fn)
}

// WithContainer calls fn with a fresh [Slot] backed by c and returns fn's
// result. c must be in its empty state. WithContainer panics if c is nil.
//
// The With functions are the only way to obtain a usable Slot; every slot
// identity is minted here.
func WithContainer[T, R any](c Container[T], fn func(*Slot[T]) R) R {
	if c == nil {
		panic("handoff: WithContainer with nil Container")
	}
	return fn(&Slot[T]{cell: c, brand: brandSeq.Add(1)})
}

// Fill stores v in the slot and returns a [Proof] of the fill.
//
// Filling an already-filled slot replaces the stored value under the
// container's replacement policy. Each call returns a fresh Proof, and
// every Proof minted by the same slot stays valid until the slot is
// consumed. Fill panics on the zero Slot and on a consumed Slot.
func (s *Slot[T]) Fill(v T) Proof {
	switch {
	case s.brand == 0:
		panic("handoff: Fill on zero Slot; slots come from With, WithRaw, or WithContainer")
	case s.cell == nil:
		panic("handoff: Fill on consumed Slot")
	}
	s.cell.Fill(v)
	return Proof{brand: s.brand}
}

// Unlock consumes the slot and returns the stored value.
//
// The proof must have been minted by a Fill on this same slot. Any other
// proof panics: the zero Proof, or one minted by a different slot, even a
// slot of the same element type created by an identical call. After Unlock
// returns, the slot is consumed and all further use panics.
func (s *Slot[T]) Unlock(p Proof) T {
	switch {
	case s.brand == 0:
		panic("handoff: Unlock on zero Slot; slots come from With, WithRaw, or WithContainer")
	case s.cell == nil:
		panic("handoff: Unlock on consumed Slot")
	case p.brand == 0:
		panic("handoff: Unlock with zero Proof; proofs come from Fill")
	case p.brand != s.brand:
		panic("handoff: Proof was minted by a different Slot")
	}
	cell := s.cell
	s.cell = nil
	return cell.Unpack()
}
