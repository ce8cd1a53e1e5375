package textiter

import "github.com/grafana/textview/codec"

// RawRange is a minimal in-memory code-unit range: a plain byte slice
// exposing forward and reverse cursors. The module's own tests build
// cursors with codec.NewForwardCursor/NewReverseCursor directly rather
// than through RawRange. It plays the role the source library's archetype test
// adapters play there: a deliberately minimal range that only offers
// what a codec/iterator actually needs, so a test exercising it proves
// the codec does not secretly depend on richer range operations.
type RawRange struct {
	Units []byte
}

// NewRawRange wraps units without copying it.
func NewRawRange(units []byte) RawRange { return RawRange{Units: units} }

// Forward returns a cursor walking the range start to end.
func (r RawRange) Forward() *codec.SliceCursor[byte] {
	return codec.NewForwardCursor(r.Units)
}

// Reverse returns a cursor walking the range end to start.
func (r RawRange) Reverse() *codec.SliceCursor[byte] {
	return codec.NewReverseCursor(r.Units)
}

// Len reports the number of code units in the range.
func (r RawRange) Len() int { return len(r.Units) }
