package unicode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafana/textview/charset"
	"github.com/grafana/textview/unicode"
)

func TestCharacterAccessors(t *testing.T) {
	t.Parallel()

	c := unicode.NewCharacter(0x41, charset.UTF8.ID())
	assert.Equal(t, charset.CodePoint(0x41), c.CodePoint())
	assert.Equal(t, charset.UTF8.ID(), c.Set())

	c2 := c.SetCodePoint(0x42)
	assert.Equal(t, charset.CodePoint(0x42), c2.CodePoint())
	assert.Equal(t, charset.CodePoint(0x41), c.CodePoint(), "SetCodePoint must not mutate the receiver")
}

func TestIsSurrogate(t *testing.T) {
	t.Parallel()

	assert.True(t, unicode.IsSurrogate(0xD800))
	assert.True(t, unicode.IsSurrogate(0xDFFF))
	assert.False(t, unicode.IsSurrogate(0xD7FF))
	assert.False(t, unicode.IsSurrogate(0xE000))
}
