package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorSequentialReads(t *testing.T) {
	c := NewCursor([]byte{0x50, 0x52, 0x65, 0x67, 0x5B, 0x00, 0xAA, 0xBB, 0xCC})
	require.Equal(t, 9, c.Len())

	sig, ok := c.ReadU32()
	require.True(t, ok)
	require.Equal(t, uint32(0x67655250), sig)

	unit, ok := c.ReadU16()
	require.True(t, ok)
	require.Equal(t, uint16('['), unit)
	require.Equal(t, 6, c.Pos())
	require.Equal(t, 3, c.Remaining())

	raw, ok := c.ReadN(2)
	require.True(t, ok)
	require.Equal(t, []byte{0xAA, 0xBB}, raw)
	require.False(t, c.Done())
}

func TestCursorShortReadKeepsPosition(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})

	_, ok := c.ReadU32()
	require.False(t, ok)
	require.Equal(t, 0, c.Pos())

	_, ok = c.ReadN(2)
	require.True(t, ok)
	_, ok = c.ReadU16()
	require.False(t, ok)
	require.Equal(t, 2, c.Pos())

	_, ok = c.ReadN(-1)
	require.False(t, ok)

	empty, ok := c.ReadN(0)
	require.True(t, ok)
	require.Empty(t, empty)

	_, ok = c.ReadN(1)
	require.True(t, ok)
	require.True(t, c.Done())
}
