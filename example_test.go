package handoff_test

import (
	"fmt"
	"strconv"

	handoff "github.com/probablyarth/handoff-go"
)

// stringSource hands a short-lived string to a callback. The method is an
// ordinary, dynamically-dispatched interface method with no type
// parameters, yet thanks to the Proof-returning callback, a generic caller
// can still carry a typed value out of it.
type stringSource interface {
	Provide(fill func(s string) handoff.Proof) handoff.Proof
}

// pair provides the concatenation of its two halves. The provided string
// exists only for the duration of Provide; whatever the callback builds
// from it must leave through the slot.
type pair struct {
	left, right string
}

func (p pair) Provide(fill func(string) handoff.Proof) handoff.Proof {
	return fill(p.left + p.right)
}

// parseFrom pulls a value of any caller-chosen type out of a stringSource.
func parseFrom[T any](src stringSource, parse func(string) (T, error)) (T, error) {
	var parseErr error
	v := handoff.With(func(slot *handoff.Slot[T]) T {
		proof := src.Provide(func(s string) handoff.Proof {
			parsed, err := parse(s)
			parseErr = err
			return slot.Fill(parsed)
		})
		return slot.Unlock(proof)
	})
	return v, parseErr
}

func ExampleWith() {
	n, err := parseFrom(pair{"4", "2"}, strconv.Atoi)
	fmt.Println(n, err)
	// Output: 42 <nil>
}

func ExampleWithRaw() {
	sum := handoff.WithRaw(func(slot *handoff.Slot[uint64]) uint64 {
		proof := slot.Fill(40 + 2)
		return slot.Unlock(proof)
	})
	fmt.Println(sum)
	// Output: 42
}
