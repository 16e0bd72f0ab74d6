package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/polkit/internal/buf"
)

// --- helpers ---

func units(dst []byte, s string) []byte {
	for _, r := range s {
		dst = buf.PutU16LE(dst, uint16(r))
	}
	return dst
}

// record assembles "[key;name;" + type + ";" + size + ";" + payload + "]".
// typ and size are written as two code units each, the way real files
// store DWORDs.
func record(key, name string, typ, size uint32, payload []byte) []byte {
	var b []byte
	b = buf.PutU16LE(b, OpenBracket)
	b = units(b, key)
	b = buf.PutU16LE(b, Separator)
	b = units(b, name)
	b = buf.PutU16LE(b, Separator)
	b = buf.PutU32LE(b, typ)
	b = buf.PutU16LE(b, Separator)
	b = buf.PutU32LE(b, size)
	b = buf.PutU16LE(b, Separator)
	b = append(b, payload...)
	return buf.PutU16LE(b, CloseBracket)
}

// --- tests ---

func TestScanFields_DWORDRecord(t *testing.T) {
	raw := record("Software\\Test", "Enabled", 4, 4, []byte{0x01, 0x00, 0x00, 0x00})
	c := buf.NewCursor(raw)

	f, err := ScanFields(c)
	require.NoError(t, err)
	require.True(t, c.Done())
	require.Equal(t, 0, f.Offset)
	require.Equal(t, []byte("Software\\Test"), f.Key())
	require.Equal(t, []byte("Enabled"), f.Name())
	require.Equal(t, []byte{0x04, 0x00}, f.Type())
	require.Equal(t, []byte{0x04, 0x00}, f.Size())
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, f.Data())
}

func TestScanFields_ZeroPayload(t *testing.T) {
	raw := record("K", "V", 3, 0, nil)
	c := buf.NewCursor(raw)

	f, err := ScanFields(c)
	require.NoError(t, err)
	require.Empty(t, f.Data())
	require.True(t, c.Done())
}

func TestScanFields_PayloadMayContainDelimiters(t *testing.T) {
	payload := []byte{0x5D, 0x00, 0x3B, 0x00, 0x5B, 0x00}
	raw := record("K", "V", 3, uint32(len(payload)), payload)

	f, err := ScanFields(buf.NewCursor(raw))
	require.NoError(t, err)
	require.Equal(t, payload, f.Data())
}

func TestScanFields_NarrowsCodeUnits(t *testing.T) {
	// U+0141 narrows to 0x41.
	raw := record("Łb", "n", 1, 0, nil)

	f, err := ScanFields(buf.NewCursor(raw))
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 'b'}, f.Key())
}

func TestScanFields_SkipsUnitsBeforeBracket(t *testing.T) {
	raw := units(nil, "xx;")
	raw = append(raw, record("K", "V", 1, 0, nil)...)

	f, err := ScanFields(buf.NewCursor(raw))
	require.NoError(t, err)
	require.Equal(t, []byte("K"), f.Key())
	require.Equal(t, 0, f.Offset)
}

func TestScanFields_BackToBack(t *testing.T) {
	first := record("A", "1", 4, 1, []byte{0x07})
	raw := append(first, record("B", "2", 4, 1, []byte{0x08})...)
	c := buf.NewCursor(raw)

	f1, err := ScanFields(c)
	require.NoError(t, err)
	f2, err := ScanFields(c)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), f1.Key())
	require.Equal(t, []byte("B"), f2.Key())
	require.Equal(t, len(first), f2.Offset)
	require.True(t, c.Done())
}

func TestScanFields_Errors(t *testing.T) {
	valid := record("K", "V", 4, 4, []byte{1, 0, 0, 0})

	tests := []struct {
		name string
		raw  []byte
		want error
	}{
		{
			name: "unterminated bracket",
			raw:  units(nil, "[Key;Na"),
			want: ErrUnterminated,
		},
		{
			name: "closing bracket before four separators",
			raw:  units(nil, "[Key;Name]"),
			want: ErrFieldCount,
		},
		{
			name: "closing bracket before opening",
			raw:  units(nil, "]"),
			want: ErrFieldCount,
		},
		{
			name: "no opening bracket",
			raw:  units(nil, "abc"),
			want: ErrTruncated,
		},
		{
			name: "odd trailing byte",
			raw:  []byte{0x5B},
			want: ErrTruncated,
		},
		{
			name: "empty type field",
			raw:  append(append(units(nil, "[K;V;;"), buf.PutU32LE(nil, 1)...), 0x3B, 0x00, 0x07, 0x5D, 0x00),
			want: ErrBadType,
		},
		{
			name: "one byte type field",
			raw:  append(append(units(nil, "[K;V;\x04;"), buf.PutU32LE(nil, 1)...), 0x3B, 0x00, 0x07, 0x5D, 0x00),
			want: ErrBadType,
		},
		{
			name: "empty size field",
			raw:  units(nil, "[K;V;\x04\x00;;]"),
			want: ErrBadSize,
		},
		{
			name: "negative size",
			raw:  record("K", "V", 3, 0x00FF00FF, nil), // narrows to ff ff
			want: ErrBadSize,
		},
		{
			name: "payload longer than stream",
			raw:  valid[:len(valid)-4],
			want: ErrTruncated,
		},
		{
			name: "missing closing bracket after payload",
			raw:  valid[:len(valid)-2],
			want: ErrUnterminated,
		},
		{
			name: "garbage after payload",
			raw:  append(append([]byte{}, valid[:len(valid)-2]...), units(nil, "x]")...),
			want: ErrTrailingData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanFields(buf.NewCursor(tt.raw))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeSize(t *testing.T) {
	n, err := DecodeSize([]byte{0x10, 0x00, 0xFF})
	require.NoError(t, err)
	require.Equal(t, 16, n)

	_, err = DecodeSize([]byte{0x10})
	require.ErrorIs(t, err, ErrBadSize)

	_, err = DecodeSize([]byte{0x00, 0x80})
	require.ErrorIs(t, err, ErrBadSize)
}
