package codec

import "github.com/grafana/textview/unicode"

// UTF8BOMState is the state of the UTF-8-with-BOM codec: whether a byte
// order mark has been read (on decode) or written (on encode) yet.
type UTF8BOMState struct {
	bomReadOrWritten bool
}

// UTF8BOMTransition requests a state change on a UTF8BOM codec.
type UTF8BOMTransition int

const (
	// UTF8BOMToInitial clears the BOM-written bit.
	UTF8BOMToInitial UTF8BOMTransition = iota
	// UTF8BOMToBOMWritten emits the BOM if it has not been written yet
	// and sets the bit; a no-op if the bit is already set.
	UTF8BOMToBOMWritten
	// UTF8BOMToAssumeBOMWritten sets the bit without emitting bytes,
	// asserting the BOM is already present externally.
	UTF8BOMToAssumeBOMWritten
)

// UTF8BOM implements the UTF-8 codec with byte-order-mark handling:
// EF BB BF emitted once before the first encoded character (unless the
// state says it already has been), and absorbed silently from the start
// of a decoded sequence.
type UTF8BOM struct{}

// MinCodeUnits implements Codec.
func (UTF8BOM) MinCodeUnits() int { return 1 }

// MaxCodeUnits implements Codec.
func (UTF8BOM) MaxCodeUnits() int { return 4 }

// EncodeStateTransition implements Codec; see UTF8BOMTransition.
func (UTF8BOM) EncodeStateTransition(state *UTF8BOMState, out Sink[byte], transition UTF8BOMTransition) (EncodeStatus, int) {
	switch transition {
	case UTF8BOMToInitial:
		state.bomReadOrWritten = false
		return EncodeOK, 0
	case UTF8BOMToBOMWritten:
		if state.bomReadOrWritten {
			return EncodeOK, 0
		}
		out.Write(0xEF)
		out.Write(0xBB)
		out.Write(0xBF)
		state.bomReadOrWritten = true
		return EncodeOK, 3
	case UTF8BOMToAssumeBOMWritten:
		state.bomReadOrWritten = true
		return EncodeOK, 0
	default:
		return EncodeOK, 0
	}
}

// Encode implements Codec: emits a leading BOM on first use, then
// delegates to the plain UTF-8 codec.
func (u UTF8BOM) Encode(state *UTF8BOMState, out Sink[byte], c unicode.Character) (EncodeStatus, int) {
	n := 0
	if !state.bomReadOrWritten {
		_, written := u.EncodeStateTransition(state, out, UTF8BOMToBOMWritten)
		n += written
	}
	status, written := UTF8{}.Encode(nil, out, c)
	return status, n + written
}

// Decode implements Codec: delegates to the plain UTF-8 codec, then
// absorbs a leading BOM as DecodeNoCharacter.
func (UTF8BOM) Decode(state *UTF8BOMState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	status, n := UTF8{}.Decode(nil, in, c)
	if status != DecodeOK {
		return status, n
	}
	if !state.bomReadOrWritten && c.CodePoint() == unicode.ByteOrderMark {
		state.bomReadOrWritten = true
		return DecodeNoCharacter, n
	}
	state.bomReadOrWritten = true
	return DecodeOK, n
}

// RDecode implements Codec: delegates to the plain UTF-8 reverse codec;
// only a BOM found at the logical start of the range (in.Done() after
// the read) is absorbed.
func (UTF8BOM) RDecode(_ *UTF8BOMState, in Cursor[byte], c *unicode.Character) (DecodeStatus, int) {
	status, n := UTF8{}.RDecode(nil, in, c)
	if status != DecodeOK {
		return status, n
	}
	if in.Done() && c.CodePoint() == unicode.ByteOrderMark {
		return DecodeNoCharacter, n
	}
	return DecodeOK, n
}

var _ Codec[UTF8BOMState, UTF8BOMTransition, byte] = UTF8BOM{}
