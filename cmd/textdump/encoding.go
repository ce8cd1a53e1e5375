package main

import (
	"fmt"

	"github.com/grafana/textview/codec"
	"github.com/grafana/textview/internal/errext"
	"github.com/grafana/textview/internal/errext/exitcodes"
	"github.com/grafana/textview/textiter"
)

// encoding names one of the codecs textdump can select with --encoding.
type encoding string

const (
	encodingUTF8     encoding = "utf-8"
	encodingUTF16BE  encoding = "utf-16be"
	encodingUTF16LE  encoding = "utf-16le"
	encodingUTF8BOM  encoding = "utf-8-bom"
	encodingUTF16BOM encoding = "utf-16-bom"
)

func encodingNames() []string {
	return []string{
		string(encodingUTF8), string(encodingUTF16BE), string(encodingUTF16LE),
		string(encodingUTF8BOM), string(encodingUTF16BOM),
	}
}

// newDriver builds the forward or reverse iteration driver for the
// requested encoding over units, honoring assumeBOM for the two
// BOM-aware codecs (asserting the BOM was already consumed/written
// externally rather than expecting it at the start of units).
func newDriver(enc encoding, units []byte, reverse, assumeBOM bool) (textiter.Driver, error) {
	switch enc {
	case encodingUTF8:
		return beginView(textiter.NewView(units, codec.UTF8{}, codec.TrivialState{}), reverse), nil
	case encodingUTF16BE:
		return beginView(textiter.NewView(units, codec.NewUTF16BE(), codec.TrivialState{}), reverse), nil
	case encodingUTF16LE:
		return beginView(textiter.NewView(units, codec.NewUTF16LE(), codec.TrivialState{}), reverse), nil
	case encodingUTF8BOM:
		state := codec.UTF8BOMState{}
		if assumeBOM {
			codec.UTF8BOM{}.EncodeStateTransition(&state, discardSink{}, codec.UTF8BOMToAssumeBOMWritten)
		}
		return beginView(textiter.NewView(units, codec.UTF8BOM{}, state), reverse), nil
	case encodingUTF16BOM:
		state := codec.UTF16BOMState{}
		if assumeBOM {
			codec.UTF16BOM{}.EncodeStateTransition(&state, discardSink{}, codec.UTF16BOMToAssumeBOMWritten)
		}
		return beginView(textiter.NewView(units, codec.UTF16BOM{}, state), reverse), nil
	default:
		return nil, errext.WithExitCodeIfNone(
			errext.WithHint(fmt.Errorf("unknown encoding %q", enc), fmt.Sprintf("choose one of: %v", encodingNames())),
			exitcodes.InvalidConfig,
		)
	}
}

func beginView[S any, T any](v *textiter.View[S, T], reverse bool) textiter.Driver {
	if reverse {
		return v.RBegin()
	}
	return v.Begin()
}

// discardSink is a codec.Sink that throws away every unit written to
// it, used to apply a state transition purely for its side effect on
// state without actually emitting a byte-order mark.
type discardSink struct{}

func (discardSink) Write(byte) {}
