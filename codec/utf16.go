package codec

import (
	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/unicode"
)

// utf16Endian selects the byte order a UTF16BE/UTF16LE codec serializes
// its 16-bit code units with.
type utf16Endian int

const (
	bigEndian utf16Endian = iota
	littleEndian
)

func (e utf16Endian) put(out Sink[byte], u uint16) {
	if e == bigEndian {
		out.Write(byte(u >> 8))
		out.Write(byte(u))
	} else {
		out.Write(byte(u))
		out.Write(byte(u >> 8))
	}
}

// readUnit reads one 16-bit code unit from a byte cursor in the given
// byte order. n reports how many bytes were actually consumed from in,
// which is 1 rather than 0 when a lone leading byte was read before the
// cursor ran out; ok is false if the cursor ran out mid-unit.
func (e utf16Endian) readUnit(in Cursor[byte]) (u uint16, n int, ok bool) {
	if in.Done() {
		return 0, 0, false
	}
	b1 := in.Read()
	if in.Done() {
		return 0, 1, false
	}
	b2 := in.Read()
	if e == bigEndian {
		return uint16(b1)<<8 | uint16(b2), 2, true
	}
	return uint16(b2)<<8 | uint16(b1), 2, true
}

// utf16Codec implements the shared UTF-16 algorithm (§4.4) over bytes
// serialized in a fixed endianness. UTF16BE and UTF16LE are thin,
// exported wrappers selecting that endianness.
type utf16Codec struct {
	endian utf16Endian
}

func (utf16Codec) MinCodeUnits() int { return 2 }
func (utf16Codec) MaxCodeUnits() int { return 4 }

func (utf16Codec) EncodeStateTransition(_ *TrivialState, _ Sink[byte], _ TrivialTransition) (EncodeStatus, int) {
	return EncodeOK, 0
}

func (u utf16Codec) Encode(_ *TrivialState, out Sink[byte], ch unicode.Character) (EncodeStatus, int) {
	cp := ch.CodePoint()
	if unicode.IsSurrogate(cp) {
		return EncodeInvalidCharacter, 0
	}
	if cp > unicode.MaxCodePoint {
		return EncodeInvalidCharacter, 0
	}
	if cp <= 0xFFFF {
		u.endian.put(out, uint16(cp))
		return EncodeOK, 2
	}
	hi := uint16(unicode.SurrogateFirst) + uint16((cp-0x10000)>>10)
	lo := uint16(unicode.LowSurrogateFirst) + uint16((cp-0x10000)&0x3FF)
	u.endian.put(out, hi)
	u.endian.put(out, lo)
	return EncodeOK, 4
}

func (u utf16Codec) Decode(_ *TrivialState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	cu1, n1, ok := u.endian.readUnit(in)
	if !ok {
		return DecodeUnderflow, n1
	}
	if cu1 >= uint16(unicode.LowSurrogateFirst) && cu1 <= uint16(unicode.SurrogateLast) {
		return DecodeInvalidCodeUnitSequence, 2
	}
	if cu1 >= uint16(unicode.SurrogateFirst) && cu1 <= uint16(unicode.HighSurrogateEnd) {
		cu2, n2, ok := u.endian.readUnit(in)
		if !ok {
			return DecodeUnderflow, 2 + n2
		}
		if cu2 < uint16(unicode.LowSurrogateFirst) || cu2 > uint16(unicode.SurrogateLast) {
			return DecodeInvalidCodeUnitSequence, 4
		}
		cp := 0x10000 + (charset.CodePoint(cu1&0x3FF)<<10 | charset.CodePoint(cu2&0x3FF))
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, 4
	}
	*c = unicode.NewCharacter(charset.CodePoint(cu1), charset.UTF8.ID())
	return DecodeOK, 2
}

func (u utf16Codec) RDecode(_ *TrivialState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	// in walks backward, so the two bytes of each unit arrive in the
	// opposite order to the one they are serialized in.
	rev := bigEndian
	if u.endian == bigEndian {
		rev = littleEndian
	}
	rcu1, n1, ok := rev.readUnit(in)
	if !ok {
		return DecodeUnderflow, n1
	}
	if rcu1 >= uint16(unicode.LowSurrogateFirst) && rcu1 <= uint16(unicode.SurrogateLast) {
		rcu2, n2, ok := rev.readUnit(in)
		if !ok {
			return DecodeUnderflow, 2 + n2
		}
		if rcu2 < uint16(unicode.SurrogateFirst) || rcu2 > uint16(unicode.HighSurrogateEnd) {
			return DecodeInvalidCodeUnitSequence, 4
		}
		cp := 0x10000 + (charset.CodePoint(rcu2&0x3FF)<<10 | charset.CodePoint(rcu1&0x3FF))
		*c = unicode.NewCharacter(cp, charset.UTF8.ID())
		return DecodeOK, 4
	}
	if rcu1 >= uint16(unicode.SurrogateFirst) && rcu1 <= uint16(unicode.HighSurrogateEnd) {
		return DecodeInvalidCodeUnitSequence, 2
	}
	*c = unicode.NewCharacter(charset.CodePoint(rcu1), charset.UTF8.ID())
	return DecodeOK, 2
}

// UTF16BE implements the UTF-16 codec serialized in big-endian byte
// order.
type UTF16BE struct{ utf16Codec }

// NewUTF16BE returns a UTF-16BE codec.
func NewUTF16BE() UTF16BE { return UTF16BE{utf16Codec{endian: bigEndian}} }

// UTF16LE implements the UTF-16 codec serialized in little-endian byte
// order.
type UTF16LE struct{ utf16Codec }

// NewUTF16LE returns a UTF-16LE codec.
func NewUTF16LE() UTF16LE { return UTF16LE{utf16Codec{endian: littleEndian}} }

var (
	_ Codec[TrivialState, TrivialTransition, byte] = UTF16BE{}
	_ Codec[TrivialState, TrivialTransition, byte] = UTF16LE{}
)
