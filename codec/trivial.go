package codec

import (
	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/unicode"
)

// TrivialState is the state of any codec that carries no cross-call
// state: the trivial codec itself, and the plain UTF-8/UTF-16BE/UTF-16LE
// codecs, which reuse it rather than defining their own empty type.
type TrivialState struct{}

// TrivialTransition is the (empty) state-transition request for codecs
// with no state to transition between; EncodeStateTransition on these
// codecs is always a no-op.
type TrivialTransition struct{}

// Trivial is a 1:1 code-point-to-code-unit codec for encodings where the
// code unit is trusted to already be the code point: ASCII-like byte
// encodings, or any single-unit wide encoding. It never fails
// validation; the code unit's value is trusted as-is.
type Trivial[U CodeUnit] struct {
	set charset.ID
}

// NewTrivial returns a trivial codec whose decoded characters are
// tagged with the given character-set identity. The code unit width is
// asserted by the CodeUnit type parameter itself rather than at run
// time: U must already be one of the unsigned integer widths a code
// unit can take, so there is nothing left to validate once it type
// checks.
func NewTrivial[U CodeUnit](set charset.ID) Trivial[U] {
	return Trivial[U]{set: set}
}

// MinCodeUnits implements Codec.
func (Trivial[U]) MinCodeUnits() int { return 1 }

// MaxCodeUnits implements Codec.
func (Trivial[U]) MaxCodeUnits() int { return 1 }

// EncodeStateTransition implements Codec; the trivial codec has no state
// to transition, so this is always a no-op.
func (Trivial[U]) EncodeStateTransition(_ *TrivialState, _ Sink[U], _ TrivialTransition) (EncodeStatus, int) {
	return EncodeOK, 0
}

// Encode implements Codec: the code point's low bits become one code
// unit.
func (t Trivial[U]) Encode(_ *TrivialState, out Sink[U], c unicode.Character) (EncodeStatus, int) {
	out.Write(U(c.CodePoint()))
	return EncodeOK, 1
}

// Decode implements Codec: one code unit becomes the character's code
// point, unchanged.
func (t Trivial[U]) Decode(_ *TrivialState, in Cursor[U], c *unicode.Character) (DecodeStatus, int) {
	if in.Done() {
		return DecodeUnderflow, 0
	}
	u := in.Read()
	*c = unicode.NewCharacter(charset.CodePoint(u), t.set)
	return DecodeOK, 1
}

// RDecode implements Codec. The trivial codec's encoding is 1:1 and
// order-independent, so reverse decode reads identically to forward
// decode; it is still implemented as its own method per the codec
// contract rather than derived from Decode.
func (t Trivial[U]) RDecode(_ *TrivialState, in Cursor[U], c *unicode.Character) (DecodeStatus, int) {
	if in.Done() {
		return DecodeUnderflow, 0
	}
	u := in.Read()
	*c = unicode.NewCharacter(charset.CodePoint(u), t.set)
	return DecodeOK, 1
}

var _ Codec[TrivialState, TrivialTransition, byte] = Trivial[byte]{}
