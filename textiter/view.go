package textiter

import (
	"github.com/grafana/textview/codec"
	"github.com/grafana/textview/unicode"
)

// View pairs a codec with a slice of code units and an initial codec
// state, materializing forward and reverse iterators at its endpoints on
// demand. It is the entry point most callers use rather than
// constructing cursors and iterators by hand.
type View[S any, T any] struct {
	units  []byte
	c      codec.Codec[S, T, byte]
	state  S
	policy Policy
}

// NewView returns a View over units, decoded with c starting from the
// given initial state.
func NewView[S any, T any](units []byte, c codec.Codec[S, T, byte], initial S) *View[S, T] {
	return &View[S, T]{units: units, c: c, state: initial}
}

// WithPolicy sets the error policy new iterators from this view are
// constructed with, and returns the view for chaining.
func (v *View[S, T]) WithPolicy(p Policy) *View[S, T] {
	v.policy = p
	return v
}

// Begin returns a forward iterator positioned before the first
// character in the view's range.
func (v *View[S, T]) Begin() *Iterator[S, T] {
	cur := codec.NewForwardCursor(v.units)
	return New(cur, v.c, v.state).WithPolicy(v.policy)
}

// RBegin returns a reverse iterator positioned after the last character
// in the view's range, i.e. one that yields characters from the end of
// the range toward its start.
func (v *View[S, T]) RBegin() *Iterator[S, T] {
	cur := codec.NewReverseCursor(v.units)
	return NewReverse(cur, v.c, v.state).WithPolicy(v.policy)
}

// State returns the codec state the view was constructed with. It does
// not reflect the state of any iterator obtained from Begin/RBegin,
// which each own an independent copy that advances as they decode.
func (v *View[S, T]) State() S { return v.state }

// Collect runs a forward iterator to completion and returns every
// decoded character, or the first terminal error encountered.
func (v *View[S, T]) Collect() ([]unicode.Character, error) {
	it := v.Begin()
	var out []unicode.Character
	for it.Next() {
		out = append(out, it.Character())
	}
	return out, it.Err()
}
