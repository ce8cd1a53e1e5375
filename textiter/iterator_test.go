package textiter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/codec"
	"github.com/grafana/textview/textiter"
)

func TestViewForwardIterationCollectsCharacters(t *testing.T) {
	t.Parallel()

	units := []byte("Hi \xe2\x82\xac") // "Hi " + euro sign
	v := textiter.NewView(units, codec.UTF8{}, codec.TrivialState{})
	chars, err := v.Collect()
	require.NoError(t, err)

	var got []charset.CodePoint
	for _, c := range chars {
		got = append(got, c.CodePoint())
	}
	want := []charset.CodePoint{'H', 'i', ' ', 0x20AC}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected characters (-want +got):\n%s", diff)
	}
}

func TestViewReverseIterationYieldsOppositeOrder(t *testing.T) {
	t.Parallel()

	units := []byte("abc")
	v := textiter.NewView(units, codec.UTF8{}, codec.TrivialState{})

	it := v.RBegin()
	var got []charset.CodePoint
	for it.Next() {
		got = append(got, it.Character().CodePoint())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []charset.CodePoint{'c', 'b', 'a'}, got)
}

func TestIteratorStopsAtUnderflowWithoutError(t *testing.T) {
	t.Parallel()

	v := textiter.NewView([]byte("ok"), codec.UTF8{}, codec.TrivialState{})
	it := v.Begin()
	var n int
	for it.Next() {
		n++
	}
	assert.Equal(t, 2, n)
	assert.NoError(t, it.Err())
}

func TestIteratorReportsTerminalDecodeError(t *testing.T) {
	t.Parallel()

	// A lone continuation byte is never valid at the start of a sequence.
	v := textiter.NewView([]byte{'a', 0x80}, codec.UTF8{}, codec.TrivialState{})
	it := v.Begin()

	require.True(t, it.Next())
	assert.Equal(t, charset.CodePoint('a'), it.Character().CodePoint())

	assert.False(t, it.Next())
	var decodeErr *textiter.DecodeError
	require.ErrorAs(t, it.Err(), &decodeErr)
	assert.Equal(t, codec.DecodeInvalidCodeUnitSequence, decodeErr.Status)
}

func TestIteratorThrowingPolicyPanics(t *testing.T) {
	t.Parallel()

	v := textiter.NewView([]byte{0x80}, codec.UTF8{}, codec.TrivialState{}).WithPolicy(textiter.Throwing)
	it := v.Begin()

	assert.Panics(t, func() {
		it.Next()
	})
}

func TestIteratorAbsorbsBOMTransparently(t *testing.T) {
	t.Parallel()

	units := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x")...)
	v := textiter.NewView(units, codec.UTF8BOM{}, codec.UTF8BOMState{})
	chars, err := v.Collect()
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, charset.CodePoint('x'), chars[0].CodePoint())
}
