// Package handoff passes a caller-chosen typed value out of a callback
// invoked through a non-generic interface.
//
// Go interface methods cannot have type parameters. An interface whose method
// hands short-lived data to a callback therefore gives a generic caller no
// way to return what it made from that data:
//
//	type Source interface {
//		Provide(f func(line string))
//	}
//
// A func parsing a Source into some caller-chosen T has nowhere to put the
// parsed value. handoff closes the gap with a single-value [Slot] owned by
// the caller and an unforgeable [Proof] that a fill happened. The callback
// fills the slot and returns the proof; the proof travels back through the
// interface's ordinary, non-generic return value; the value itself waits in
// the slot:
//
//	type Source interface {
//		Provide(f func(line string) handoff.Proof) handoff.Proof
//	}
//
//	func Parse[T any](src Source, parse func(string) T) T {
//		return handoff.With(func(slot *handoff.Slot[T]) T {
//			proof := src.Provide(func(line string) handoff.Proof {
//				return slot.Fill(parse(line))
//			})
//			return slot.Unlock(proof)
//		})
//	}
//
// [Slot.Unlock] accepts only a [Proof] minted by [Slot.Fill] on that same
// slot. Every scope introduction tags its slot with a fresh identity, so a
// Provide implementation cannot satisfy its contract with a proof from some
// other slot, a stale proof from an earlier call, or the zero Proof: each of
// those panics instead of handing back an unfilled or foreign value. The
// only way to produce an acceptable proof is to call f, which fills the
// caller's slot on the way.
//
// [With] backs the slot with a [Tracked] container, which keeps a presence
// flag and panics if the protocol is somehow bypassed. [WithRaw] is the
// low-level variant backed by [Raw], a bare cell the exact size of its
// element with no flag and no branch. [WithContainer] accepts any custom
// [Container] implementation.
//
// A Slot is plain single-goroutine state: not safe for concurrent use, not
// to be copied or retained after the callback that received it returns.
// Misuse of the protocol is a programming error and panics; no operation
// returns an error.
package handoff
