package codec

import (
	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/unicode"
)

// UTF8 implements the UTF-8 codec: 1-4 byte sequences, no state, no
// transitions. Overlong encodings are rejected on decode (a deliberate
// deviation from the codec this module is modeled on; see DESIGN.md).
type UTF8 struct{}

// MinCodeUnits implements Codec.
func (UTF8) MinCodeUnits() int { return 1 }

// MaxCodeUnits implements Codec.
func (UTF8) MaxCodeUnits() int { return 4 }

// EncodeStateTransition implements Codec; UTF-8 has no state.
func (UTF8) EncodeStateTransition(_ *TrivialState, _ Sink[byte], _ TrivialTransition) (EncodeStatus, int) {
	return EncodeOK, 0
}

// Encode implements Codec.
func (UTF8) Encode(_ *TrivialState, out Sink[byte], ch unicode.Character) (EncodeStatus, int) {
	cp := ch.CodePoint()
	switch {
	case cp <= 0x007F:
		out.Write(byte(cp))
		return EncodeOK, 1
	case cp <= 0x07FF:
		out.Write(byte(0xC0 + ((cp >> 6) & 0x1F)))
		out.Write(byte(0x80 + (cp & 0x3F)))
		return EncodeOK, 2
	case cp <= 0xD7FF:
		out.Write(byte(0xE0 + ((cp >> 12) & 0x0F)))
		out.Write(byte(0x80 + ((cp >> 6) & 0x3F)))
		out.Write(byte(0x80 + (cp & 0x3F)))
		return EncodeOK, 3
	case cp <= 0xDFFF:
		return EncodeInvalidCharacter, 0
	case cp <= 0xFFFD:
		out.Write(byte(0xE0 + ((cp >> 12) & 0x0F)))
		out.Write(byte(0x80 + ((cp >> 6) & 0x3F)))
		out.Write(byte(0x80 + (cp & 0x3F)))
		return EncodeOK, 3
	case cp <= 0xFFFF:
		return EncodeInvalidCharacter, 0
	case cp <= unicode.MaxCodePoint:
		out.Write(byte(0xF0 + ((cp >> 18) & 0x07)))
		out.Write(byte(0x80 + ((cp >> 12) & 0x3F)))
		out.Write(byte(0x80 + ((cp >> 6) & 0x3F)))
		out.Write(byte(0x80 + (cp & 0x3F)))
		return EncodeOK, 4
	default:
		return EncodeInvalidCharacter, 0
	}
}

// Decode implements Codec, consuming 1-4 bytes of forward input.
func (UTF8) Decode(_ *TrivialState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	if in.Done() {
		return DecodeUnderflow, 0
	}
	cu1 := in.Read()
	n := 1
	if cu1 <= 0x7F {
		*c = unicode.NewCharacter(charset.CodePoint(cu1), charset.UTF8.ID())
		return DecodeOK, n
	}
	if cu1&0xC0 == 0x80 {
		return DecodeInvalidCodeUnitSequence, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	cu2 := in.Read()
	n++
	if cu2&0xC0 != 0x80 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if cu1&0xE0 == 0xC0 {
		cp := charset.CodePoint(cu1&0x1F)<<6 | charset.CodePoint(cu2&0x3F)
		if cp < 0x80 {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	cu3 := in.Read()
	n++
	if cu3&0xC0 != 0x80 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if cu1&0xF0 == 0xE0 {
		cp := charset.CodePoint(cu1&0x0F)<<12 | charset.CodePoint(cu2&0x3F)<<6 | charset.CodePoint(cu3&0x3F)
		if cp < 0x800 {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	cu4 := in.Read()
	n++
	if cu4&0xC0 != 0x80 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if cu1&0xF8 == 0xF0 {
		cp := charset.CodePoint(cu1&0x07)<<18 | charset.CodePoint(cu2&0x3F)<<12 |
			charset.CodePoint(cu3&0x3F)<<6 | charset.CodePoint(cu4&0x3F)
		if cp < 0x10000 || cp > unicode.MaxCodePoint {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	return DecodeInvalidCodeUnitSequence, n
}

// RDecode implements Codec. in walks backward, so the first byte seen
// is the last byte of the encoded character; the sequence terminates at
// the first byte (walking backward) whose top two bits are not 10, and
// the code point is reassembled from that leading byte plus the
// continuation bytes read before it.
func (UTF8) RDecode(_ *TrivialState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	if in.Done() {
		return DecodeUnderflow, 0
	}
	rcu1 := in.Read()
	n := 1
	if rcu1 <= 0x7F {
		*c = unicode.NewCharacter(charset.CodePoint(rcu1), charset.UTF8.ID())
		return DecodeOK, n
	}
	if rcu1&0xC0 != 0x80 {
		return DecodeInvalidCodeUnitSequence, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	rcu2 := in.Read()
	n++
	if rcu2&0x80 == 0 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if rcu2&0x40 != 0 {
		if rcu2&0xE0 != 0xC0 {
			return DecodeInvalidCodeUnitSequence, n
		}
		cp := charset.CodePoint(rcu2&0x1F)<<6 | charset.CodePoint(rcu1&0x3F)
		if cp < 0x80 {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	rcu3 := in.Read()
	n++
	if rcu3&0x80 == 0 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if rcu3&0x40 != 0 {
		if rcu3&0xF0 != 0xE0 {
			return DecodeInvalidCodeUnitSequence, n
		}
		cp := charset.CodePoint(rcu3&0x0F)<<12 | charset.CodePoint(rcu2&0x3F)<<6 | charset.CodePoint(rcu1&0x3F)
		if cp < 0x800 {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	if in.Done() {
		return DecodeUnderflow, n
	}
	rcu4 := in.Read()
	n++
	if rcu4&0x80 == 0 {
		return DecodeInvalidCodeUnitSequence, n
	}
	if rcu4&0x40 != 0 {
		if rcu4&0xF8 != 0xF0 {
			return DecodeInvalidCodeUnitSequence, n
		}
		cp := charset.CodePoint(rcu4&0x07)<<18 | charset.CodePoint(rcu3&0x3F)<<12 |
			charset.CodePoint(rcu2&0x3F)<<6 | charset.CodePoint(rcu1&0x3F)
		if cp < 0x10000 || cp > unicode.MaxCodePoint {
			return DecodeInvalidCodeUnitSequence, n
		}
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, n
	}

	return DecodeInvalidCodeUnitSequence, n
}

var _ Codec[TrivialState, TrivialTransition, byte] = UTF8{}
