package codec

import "github.com/grafana/textview/unicode"

// CodeUnit is any unsigned integer type wide enough to store one code
// unit of an encoding: a byte for UTF-8, a 16-bit word for UTF-16, or
// wider for trivial encodings that need it.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Cursor abstracts a position within a code-unit range the way a codec
// needs it: a test for exhaustion and a read-and-advance step. A forward
// cursor and a reverse cursor over the same underlying range both
// satisfy Cursor; Decode is driven by a forward cursor, RDecode by a
// cursor that walks from the end of the range toward its start. Codecs
// never know or care which.
type Cursor[U CodeUnit] interface {
	// Done reports whether the cursor has reached its sentinel: the end
	// of the range for a forward cursor, the logical start of the range
	// for a reverse cursor.
	Done() bool
	// Read returns the code unit at the cursor's current position and
	// advances it by one unit. Read must not be called when Done is
	// true.
	Read() U
}

// Sink abstracts a destination for encoded code units.
type Sink[U CodeUnit] interface {
	Write(U)
}

// Codec is the uniform five-operation contract every codec in this
// package implements: a state-transition request, an encode operation, a
// forward decode operation, a reverse decode operation, and the
// compile-time code-unit bounds of any single encoded character.
//
// S is the codec's state type (empty for stateless codecs), T is its
// state-transition request type (empty where no transitions exist), and
// U is the code-unit type the codec reads and writes.
//
// Implementations are small immutable values (at most a fixed setting
// such as the trivial codec's character set or the UTF-16 byte order);
// none of the state a running decode/encode needs lives on the Codec
// value itself, it is
// threaded through the state parameter by the caller. This lets a single
// iterator own one codec state while sharing the (stateless) Codec value
// across any number of iterators, including across goroutines.
type Codec[S any, T any, U CodeUnit] interface {
	// EncodeStateTransition applies a requested state change, writing
	// any code units the transition requires (e.g. a byte-order mark).
	EncodeStateTransition(state *S, out Sink[U], transition T) (EncodeStatus, int)
	// Encode writes the code-unit representation of one character.
	Encode(state *S, out Sink[U], c unicode.Character) (EncodeStatus, int)
	// Decode consumes one code point's worth of code units in forward
	// direction.
	Decode(state *S, in Cursor[U], c *unicode.Character) (DecodeStatus, int)
	// RDecode consumes one code point's worth of code units in reverse
	// direction: in is a cursor walking from the end of the range
	// toward its start.
	RDecode(state *S, in Cursor[U], c *unicode.Character) (DecodeStatus, int)
	// MinCodeUnits and MaxCodeUnits bound the length, in code units, of
	// any single encoded character.
	MinCodeUnits() int
	MaxCodeUnits() int
}
