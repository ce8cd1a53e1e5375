package codec

import "github.com/grafana/textview/unicode"

// UTF16BOMEndian is the byte order a UTF16BOM codec has committed to, or
// assumed pending a BOM that overrides it.
type UTF16BOMEndian int

const (
	// UTF16BOMBigEndian is the default assumption before any BOM has
	// been read or written.
	UTF16BOMBigEndian UTF16BOMEndian = iota
	UTF16BOMLittleEndian
)

// UTF16BOMState is the state of the UTF-16-with-BOM codec.
type UTF16BOMState struct {
	bomReadOrWritten bool
	endian           UTF16BOMEndian
}

// Endian returns the codec's current (or assumed) byte order.
func (s UTF16BOMState) Endian() UTF16BOMEndian { return s.endian }

// UTF16BOMTransition requests a state change on a UTF16BOM codec.
type UTF16BOMTransition int

const (
	UTF16BOMToInitial UTF16BOMTransition = iota
	UTF16BOMToBOMWritten
	UTF16BOMToBEBOMWritten
	UTF16BOMToLEBOMWritten
	UTF16BOMToAssumeBOMWritten
	UTF16BOMToAssumeBEBOMWritten
	UTF16BOMToAssumeLEBOMWritten
)

// UTF16BOM implements the UTF-16 codec with byte-order-mark and endian
// detection: FE FF (big-endian) or FF FE (little-endian) emitted once
// before the first encoded character, and consumed/interpreted from the
// start of a decoded sequence to pick an endianness.
type UTF16BOM struct{}

// MinCodeUnits implements Codec.
func (UTF16BOM) MinCodeUnits() int { return 2 }

// MaxCodeUnits implements Codec.
func (UTF16BOM) MaxCodeUnits() int { return 4 }

// EncodeStateTransition implements Codec, applying the transition table
// of §4.6: to_initial always succeeds; from the initial state every
// transition picks an endianness (and optionally emits a BOM); once a
// BOM has been read or written, only to_initial has any effect, and a
// transition requesting the other endianness is an error.
func (UTF16BOM) EncodeStateTransition(
	state *UTF16BOMState, out Sink[byte], transition UTF16BOMTransition,
) (EncodeStatus, int) {
	if transition == UTF16BOMToInitial {
		state.bomReadOrWritten = false
		state.endian = UTF16BOMBigEndian
		return EncodeOK, 0
	}

	if !state.bomReadOrWritten {
		n := 0
		switch transition {
		case UTF16BOMToBOMWritten, UTF16BOMToBEBOMWritten:
			out.Write(0xFE)
			out.Write(0xFF)
			n = 2
			state.endian = UTF16BOMBigEndian
		case UTF16BOMToLEBOMWritten:
			out.Write(0xFF)
			out.Write(0xFE)
			n = 2
			state.endian = UTF16BOMLittleEndian
		case UTF16BOMToAssumeBOMWritten, UTF16BOMToAssumeBEBOMWritten:
			state.endian = UTF16BOMBigEndian
		case UTF16BOMToAssumeLEBOMWritten:
			state.endian = UTF16BOMLittleEndian
		}
		state.bomReadOrWritten = true
		return EncodeOK, n
	}

	if state.endian == UTF16BOMBigEndian {
		if transition == UTF16BOMToLEBOMWritten || transition == UTF16BOMToAssumeLEBOMWritten {
			return EncodeInvalidStateTransition, 0
		}
	} else {
		if transition == UTF16BOMToBEBOMWritten || transition == UTF16BOMToAssumeBEBOMWritten {
			return EncodeInvalidStateTransition, 0
		}
	}
	return EncodeOK, 0
}

func (u UTF16BOM) subCodec(endian UTF16BOMEndian) utf16Codec {
	if endian == UTF16BOMBigEndian {
		return utf16Codec{endian: bigEndian}
	}
	return utf16Codec{endian: littleEndian}
}

// Encode implements Codec: writes a default (big-endian) BOM on first
// use, then delegates to the endian-selected UTF-16 sub-codec.
func (u UTF16BOM) Encode(state *UTF16BOMState, out Sink[byte], c unicode.Character) (EncodeStatus, int) {
	n := 0
	if !state.bomReadOrWritten {
		_, written := u.EncodeStateTransition(state, out, UTF16BOMToBOMWritten)
		n += written
	}
	status, written := u.subCodec(state.endian).Encode(nil, out, c)
	return status, n + written
}

// Decode implements Codec: delegates to the endian-selected sub-codec,
// then, on the first decode only, interprets a decoded U+FEFF/U+FFFE as
// a byte-order mark rather than a character, flipping the assumed
// endianness if the swapped form was seen.
func (u UTF16BOM) Decode(state *UTF16BOMState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	status, n := u.subCodec(state.endian).Decode(nil, in, c)
	if status != DecodeOK {
		return status, n
	}

	if !state.bomReadOrWritten {
		switch c.CodePoint() {
		case unicode.ByteOrderMark:
			state.bomReadOrWritten = true
			return DecodeNoCharacter, n
		case unicode.ByteOrderMarkSwapped:
			if state.endian == UTF16BOMBigEndian {
				state.endian = UTF16BOMLittleEndian
			} else {
				state.endian = UTF16BOMBigEndian
			}
			state.bomReadOrWritten = true
			return DecodeNoCharacter, n
		}
	}
	state.bomReadOrWritten = true
	return DecodeOK, n
}

// RDecode implements Codec: mirrors Decode, but only a terminal U+FEFF
// (the cursor reaching the logical start of the range immediately after
// the read) is absorbed as a BOM; spec.md's open question about the
// endian-flip branch on reverse decode is resolved by not attempting an
// endian flip in reverse at all, since a BOM can only be unambiguously
// identified once the range's start has been reached.
func (u UTF16BOM) RDecode(state *UTF16BOMState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	status, n := u.subCodec(state.endian).RDecode(nil, in, c)
	if status != DecodeOK {
		return status, n
	}
	if in.Done() && c.CodePoint() == unicode.ByteOrderMark {
		return DecodeNoCharacter, n
	}
	return DecodeOK, n
}

var _ Codec[UTF16BOMState, UTF16BOMTransition, byte] = UTF16BOM{}
