// Package unicode holds the primitive types shared by every codec in this
// module: the Character value type and the Unicode constants codecs
// validate code points against. The code unit width constraint is
// codec.CodeUnit.
//
// These types are value types; a codec borrows them, it never owns them.
package unicode

import "github.com/grafana/textview/charset"

// Character pairs a code point with the identity of the character set it
// was drawn from. Character-set identity is a property of the type the
// character came from, not of the individual instance, but callers still
// carry it alongside the code point so mixed-set pipelines stay honest.
type Character struct {
	codePoint charset.CodePoint
	set       charset.ID
}

// NewCharacter builds a character with the given code point and
// originating character-set identity.
func NewCharacter(cp charset.CodePoint, set charset.ID) Character {
	return Character{codePoint: cp, set: set}
}

// CodePoint returns the character's code point.
func (c Character) CodePoint() charset.CodePoint { return c.codePoint }

// Set returns the identity of the character set the code point was
// drawn from.
func (c Character) Set() charset.ID { return c.set }

// SetCodePoint returns a copy of c with its code point replaced. Mutation
// never changes the character-set identity.
func (c Character) SetCodePoint(cp charset.CodePoint) Character {
	c.codePoint = cp
	return c
}

// Unicode code point boundaries the codecs in this module validate
// against; see the Unicode Standard chapter 3, sections 3.8 and 3.9.
const (
	MaxCodePoint         charset.CodePoint = 0x10FFFF
	SurrogateFirst       charset.CodePoint = 0xD800
	SurrogateLast        charset.CodePoint = 0xDFFF
	HighSurrogateEnd     charset.CodePoint = 0xDBFF
	LowSurrogateFirst    charset.CodePoint = 0xDC00
	NonCharacterFirst    charset.CodePoint = 0xFFFE
	NonCharacterLast     charset.CodePoint = 0xFFFF
	ByteOrderMark        charset.CodePoint = 0xFEFF
	ByteOrderMarkSwapped charset.CodePoint = 0xFFFE
)

// IsSurrogate reports whether cp falls in the UTF-16 surrogate range
// U+D800..U+DFFF. Surrogates are never valid standalone code points.
func IsSurrogate(cp charset.CodePoint) bool {
	return cp >= SurrogateFirst && cp <= SurrogateLast
}
