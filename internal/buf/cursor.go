package buf

// Cursor walks a byte slice front to back. Reads never run past the end of
// the slice: a short read reports ok = false and leaves the position where it
// was.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the underlying data.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Done reports whether every byte has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.data) }

// ReadN consumes n bytes. The returned slice aliases the underlying data.
func (c *Cursor) ReadN(n int) ([]byte, bool) {
	b, ok := Slice(c.data, c.pos, n)
	if !ok {
		return nil, false
	}
	c.pos += n
	return b, true
}

// ReadU16 consumes a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, bool) {
	b, ok := c.ReadN(2)
	if !ok {
		return 0, false
	}
	return U16LE(b), true
}

// ReadU32 consumes a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, bool) {
	b, ok := c.ReadN(4)
	if !ok {
		return 0, false
	}
	return U32LE(b), true
}
