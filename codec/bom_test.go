package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/codec"
	"github.com/grafana/textview/unicode"
)

func TestUTF8BOMEmitsBOMOnceThenDelegates(t *testing.T) {
	t.Parallel()

	var state codec.UTF8BOMState
	var sink codec.SliceSink[byte]

	status, n := codec.UTF8BOM{}.Encode(&state, &sink, unicode.NewCharacter('A', charset.UTF8.ID()))
	require.Equal(t, codec.EncodeOK, status)
	assert.Equal(t, 4, n) // 3-byte BOM + 1-byte 'A'
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'A'}, sink.Units)

	status, n = codec.UTF8BOM{}.Encode(&state, &sink, unicode.NewCharacter('B', charset.UTF8.ID()))
	require.Equal(t, codec.EncodeOK, status)
	assert.Equal(t, 1, n) // no BOM the second time
}

func TestUTF8BOMDecodeAbsorbsLeadingBOM(t *testing.T) {
	t.Parallel()

	units := []byte{0xEF, 0xBB, 0xBF, 'A'}
	cur := codec.NewForwardCursor(units)
	var state codec.UTF8BOMState
	var ch unicode.Character

	status, n := codec.UTF8BOM{}.Decode(&state, cur, &ch)
	require.Equal(t, codec.DecodeNoCharacter, status)
	assert.Equal(t, 3, n)

	status, n = codec.UTF8BOM{}.Decode(&state, cur, &ch)
	require.Equal(t, codec.DecodeOK, status)
	assert.Equal(t, 1, n)
	assert.Equal(t, charset.CodePoint('A'), ch.CodePoint())
}

func TestUTF8BOMRDecodeAbsorbsTerminalBOM(t *testing.T) {
	t.Parallel()

	units := []byte{0xEF, 0xBB, 0xBF, 'A'}
	cur := codec.NewReverseCursor(units)
	var state codec.UTF8BOMState
	var ch unicode.Character

	status, _ := codec.UTF8BOM{}.RDecode(&state, cur, &ch)
	require.Equal(t, codec.DecodeOK, status)
	assert.Equal(t, charset.CodePoint('A'), ch.CodePoint())

	status, n := codec.UTF8BOM{}.RDecode(&state, cur, &ch)
	require.Equal(t, codec.DecodeNoCharacter, status)
	assert.Equal(t, 3, n)
	assert.True(t, cur.Done())
}

func TestUTF16BOMDefaultsToBigEndianAndFlipsOnSwappedMark(t *testing.T) {
	t.Parallel()

	// FF FE at the start, interpreted big-endian first, is the
	// byte-swapped BOM, so the codec should flip to little-endian.
	units := []byte{0xFF, 0xFE, 0x41, 0x00} // 'A' little-endian after the flip
	cur := codec.NewForwardCursor(units)
	var state codec.UTF16BOMState
	var ch unicode.Character

	status, n := codec.UTF16BOM{}.Decode(&state, cur, &ch)
	require.Equal(t, codec.DecodeNoCharacter, status)
	assert.Equal(t, 2, n)
	assert.Equal(t, codec.UTF16BOMLittleEndian, state.Endian())

	status, _ = codec.UTF16BOM{}.Decode(&state, cur, &ch)
	require.Equal(t, codec.DecodeOK, status)
	assert.Equal(t, charset.CodePoint('A'), ch.CodePoint())
}

func TestUTF16BOMEncodeStateTransitionRejectsEndianSwitch(t *testing.T) {
	t.Parallel()

	var state codec.UTF16BOMState
	var sink codec.SliceSink[byte]

	status, _ := codec.UTF16BOM{}.EncodeStateTransition(&state, &sink, codec.UTF16BOMToBEBOMWritten)
	require.Equal(t, codec.EncodeOK, status)

	status, _ = codec.UTF16BOM{}.EncodeStateTransition(&state, &sink, codec.UTF16BOMToLEBOMWritten)
	assert.Equal(t, codec.EncodeInvalidStateTransition, status)
}

func TestUTF16BOMAssumeBOMWrittenSkipsEmission(t *testing.T) {
	t.Parallel()

	var state codec.UTF16BOMState
	var sink codec.SliceSink[byte]

	status, n := codec.UTF16BOM{}.EncodeStateTransition(&state, &sink, codec.UTF16BOMToAssumeLEBOMWritten)
	require.Equal(t, codec.EncodeOK, status)
	assert.Equal(t, 0, n)
	assert.Empty(t, sink.Units)
	assert.Equal(t, codec.UTF16BOMLittleEndian, state.Endian())
}

func TestUTF16BOMRDecodeDoesNotFlipEndian(t *testing.T) {
	t.Parallel()

	// A terminal literal FE FF (big-endian BOM) should be absorbed, but
	// a reverse decode never attempts an endian flip.
	units := []byte{0xFE, 0xFF}
	cur := codec.NewReverseCursor(units)
	var state codec.UTF16BOMState
	var ch unicode.Character

	status, n := codec.UTF16BOM{}.RDecode(&state, cur, &ch)
	require.Equal(t, codec.DecodeNoCharacter, status)
	assert.Equal(t, 2, n)
	assert.True(t, cur.Done())
	assert.Equal(t, codec.UTF16BOMBigEndian, state.Endian())
}
