// Package textiter drives a codec.Codec forward and in reverse over a
// code-unit range, buffering the most recently decoded character and
// surfacing decode status according to a configurable error policy. It
// is the only component that composes a codec with a range; codecs
// themselves are pure algorithms over a state and a cursor.
package textiter

import (
	"github.com/grafana/textview/codec"
	"github.com/grafana/textview/unicode"
)

// Policy selects what an Iterator does when Decode/RDecode reports a
// terminal failure (anything other than codec.DecodeOK or
// codec.DecodeNoCharacter, which the driver itself handles transparently).
type Policy int

const (
	// Returning is the default: failures are recorded and retrievable
	// via Err; Next never panics.
	Returning Policy = iota
	// Throwing causes Next to panic with a *DecodeError on any terminal
	// failure, mirroring the source library's exception-throwing error
	// policy. Recover it at a call site that wants to translate it back
	// into a normal error, e.g. with internal/errext.
	Throwing
)

// DecodeError is the error value a Throwing-policy Iterator panics with,
// and the value a Returning-policy Iterator's Err method returns.
type DecodeError struct {
	Status   codec.DecodeStatus
	Consumed int
}

func (e *DecodeError) Error() string {
	return "text decode error: " + e.Status.String()
}

// Iterator drives a codec forward or in reverse over a code-unit range.
// It owns its codec state exclusively; the underlying cursor is owned by
// whoever constructed the Iterator.
//
// An Iterator constructed by New or NewReverse is "pre-initial": it does
// not hold a decoded character until the first call to Next. Call Next
// in a loop until it returns false, then check Err, the way a Go
// iterator is conventionally driven:
//
//	it := textiter.New[codec.TrivialState](cur, codec.UTF8{}, codec.TrivialState{})
//	for it.Next() {
//	    use(it.Character())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[S any, T any] struct {
	cur     codec.Cursor[byte]
	c       codec.Codec[S, T, byte]
	state   S
	policy  Policy
	reverse bool

	ch   unicode.Character
	done bool
	err  *DecodeError
}

// New returns a forward iterator over cur, driving c starting from the
// given initial state.
func New[S any, T any](cur codec.Cursor[byte], c codec.Codec[S, T, byte], initial S) *Iterator[S, T] {
	return &Iterator[S, T]{cur: cur, c: c, state: initial}
}

// NewReverse returns a reverse iterator over cur (which must itself walk
// backward, e.g. one built with codec.NewReverseCursor), driving c
// starting from the given initial state.
func NewReverse[S any, T any](cur codec.Cursor[byte], c codec.Codec[S, T, byte], initial S) *Iterator[S, T] {
	return &Iterator[S, T]{cur: cur, c: c, state: initial, reverse: true}
}

// WithPolicy sets the iterator's error policy and returns it for
// chaining.
func (it *Iterator[S, T]) WithPolicy(p Policy) *Iterator[S, T] {
	it.policy = p
	return it
}

// Next decodes the next character, absorbing any byte-order marks along
// the way, and reports whether one was found. It returns false both at
// the end of the range and on a terminal decode failure; distinguish the
// two with Err. Under the Throwing policy, Next panics with a
// *DecodeError instead of returning false on a terminal failure.
func (it *Iterator[S, T]) Next() bool {
	if it.done {
		return false
	}
	for {
		atSentinel := it.cur.Done()
		var status codec.DecodeStatus
		var n int
		if it.reverse {
			status, n = it.c.RDecode(&it.state, it.cur, &it.ch)
		} else {
			status, n = it.c.Decode(&it.state, it.cur, &it.ch)
		}
		switch status {
		case codec.DecodeOK:
			return true
		case codec.DecodeNoCharacter:
			continue
		case codec.DecodeUnderflow:
			// Per the iteration contract, underflow is silent end-of-range
			// only if the cursor was already at its sentinel when this
			// call began; a call that started with units available but
			// ran out mid-character is a genuine truncated-input failure,
			// regardless of how many units it managed to consume before
			// failing.
			if atSentinel {
				it.done = true
				return false
			}
			it.fail(status, n)
			return false
		default:
			it.fail(status, n)
			return false
		}
	}
}

func (it *Iterator[S, T]) fail(status codec.DecodeStatus, n int) {
	it.done = true
	it.err = &DecodeError{Status: status, Consumed: n}
	if it.policy == Throwing {
		panic(it.err)
	}
}

// Character returns the character decoded by the most recent successful
// call to Next. Its value is undefined before the first successful Next
// or after Next has returned false.
func (it *Iterator[S, T]) Character() unicode.Character { return it.ch }

// Err returns the terminal decode failure, if any, that caused Next to
// return false. It is nil if iteration simply reached the end of the
// range.
func (it *Iterator[S, T]) Err() error {
	if it.err == nil {
		return nil
	}
	return it.err
}

// State returns a copy of the iterator's codec state as of the most
// recent Next call.
func (it *Iterator[S, T]) State() S { return it.state }

// Driver is the non-generic subset of Iterator's API that callers who
// don't know (or care about) a particular codec's state/transition
// types can use. Any *Iterator[S, T] satisfies it regardless of its
// type arguments, which is what lets cmd/textdump pick a codec at
// runtime from a flag and drive it through a single code path.
type Driver interface {
	Next() bool
	Character() unicode.Character
	Err() error
}

var _ Driver = (*Iterator[codec.TrivialState, codec.TrivialTransition])(nil)
