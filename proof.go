package handoff

// Proof is evidence that a [Slot] was filled.
//
// A Proof is minted only by [Slot.Fill] and carries the identity of the slot
// that minted it; [Slot.Unlock] accepts it on that slot alone. A Proof holds
// no payload and cannot be forged outside this package. The zero Proof
// proves nothing and is rejected by every slot.
type Proof struct {
	brand uint64
}
