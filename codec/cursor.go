package codec

// SliceCursor is a Cursor backed by an in-memory slice, walking either
// forward from the start or backward from the end depending on how it
// is constructed. It is the archetype range implementation used by this
// module's own tests and by textiter.View for in-memory code-unit
// ranges; nothing in this package requires callers to use it; any type
// satisfying Cursor works.
type SliceCursor[U CodeUnit] struct {
	units   []U
	pos     int
	reverse bool
}

// NewForwardCursor returns a cursor that reads units left to right,
// starting at index 0 and reaching Done when it has consumed the whole
// slice.
func NewForwardCursor[U CodeUnit](units []U) *SliceCursor[U] {
	return &SliceCursor[U]{units: units, pos: 0}
}

// NewReverseCursor returns a cursor that reads units right to left,
// starting just past the last unit and reaching Done when it has walked
// back to index 0 (the logical start of the range).
func NewReverseCursor[U CodeUnit](units []U) *SliceCursor[U] {
	return &SliceCursor[U]{units: units, pos: len(units), reverse: true}
}

// Done implements Cursor.
func (c *SliceCursor[U]) Done() bool {
	if c.reverse {
		return c.pos <= 0
	}
	return c.pos >= len(c.units)
}

// Read implements Cursor.
func (c *SliceCursor[U]) Read() U {
	if c.reverse {
		c.pos--
		return c.units[c.pos]
	}
	u := c.units[c.pos]
	c.pos++
	return u
}

// Pos returns the cursor's current slice index. For a forward cursor
// this is the index of the next unit that will be read; for a reverse
// cursor it is one past the index of the next unit that will be read,
// i.e. the forward-order position the cursor has walked back to.
func (c *SliceCursor[U]) Pos() int { return c.pos }

// SliceSink is a Sink that appends written code units to a slice it
// owns, exposed via Units.
type SliceSink[U CodeUnit] struct {
	Units []U
}

// Write implements Sink.
func (s *SliceSink[U]) Write(u U) { s.Units = append(s.Units, u) }
