package format

import (
	"fmt"

	"github.com/joshuapare/polkit/internal/buf"
)

// Fields is one tokenized record. Key, name, type and size are the captured
// code units narrowed to one byte each. Data is the raw payload and aliases
// the scanned buffer.
type Fields struct {
	// Offset is the byte offset at which scanning of this record began.
	Offset int
	Parts  [FieldCount][]byte
}

// Key returns the narrowed key bytes.
func (f Fields) Key() []byte { return f.Parts[FieldKey] }

// Name returns the narrowed value-name bytes.
func (f Fields) Name() []byte { return f.Parts[FieldName] }

// Type returns the narrowed type bytes.
func (f Fields) Type() []byte { return f.Parts[FieldType] }

// Size returns the narrowed size bytes.
func (f Fields) Size() []byte { return f.Parts[FieldSize] }

// Data returns the raw payload.
func (f Fields) Data() []byte { return f.Parts[FieldData] }

// ScanFields consumes one bracketed record from c.
//
// Code units before the opening '[' are skipped. Once the fourth ';' has been
// captured the text fields are split off, the type and size fields are
// checked for their two int16 bytes, the size is decoded, and that
// many raw bytes are consumed as the payload. The record must then close
// with ']'.
func ScanFields(c *buf.Cursor) (Fields, error) {
	f := Fields{Offset: c.Pos()}
	var (
		capture []uint16
		started bool
		seps    int
	)
	for seps < SeparatorCount {
		unit, ok := c.ReadU16()
		if !ok {
			return Fields{}, f.errorf(endOfStream(started))
		}
		switch unit {
		case CloseBracket:
			return Fields{}, f.errorf(fmt.Errorf("%w: %d of %d parts before ']'", ErrFieldCount, seps, FieldCount))
		case OpenBracket:
			if !started {
				started = true
				continue
			}
		case Separator:
			// Legacy readers also count separators seen before '['; such
			// input fails either way, so only captured ones are counted.
			if started {
				seps++
			}
		}
		if started {
			capture = append(capture, unit)
		}
	}

	copy(f.Parts[:], splitNarrowed(capture))

	if n := len(f.Type()); n < IntFieldSize {
		return Fields{}, f.errorf(fmt.Errorf("%w: %d bytes", ErrBadType, n))
	}
	size, err := DecodeSize(f.Size())
	if err != nil {
		return Fields{}, f.errorf(err)
	}
	payload, ok := c.ReadN(size)
	if !ok {
		return Fields{}, f.errorf(fmt.Errorf("payload of %d bytes, %d left: %w", size, c.Remaining(), ErrTruncated))
	}
	f.Parts[FieldData] = payload

	unit, ok := c.ReadU16()
	switch {
	case !ok:
		return Fields{}, f.errorf(ErrUnterminated)
	case unit != CloseBracket:
		return Fields{}, f.errorf(fmt.Errorf("code unit 0x%04x at offset %d: %w", unit, c.Pos()-CodeUnitSize, ErrTrailingData))
	}
	return f, nil
}

// DecodeSize reads the payload length from a narrowed size field.
func DecodeSize(b []byte) (int, error) {
	if len(b) < IntFieldSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrBadSize, len(b))
	}
	n := buf.I16LE(b)
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrBadSize, n)
	}
	return int(n), nil
}

// splitNarrowed splits captured units on ';', narrowing each unit to a byte.
// Every part is terminated by a separator, so text after the last ';' is
// not a part.
func splitNarrowed(units []uint16) [][]byte {
	var (
		parts [][]byte
		cur   = []byte{}
	)
	for _, u := range units {
		if u == Separator {
			parts = append(parts, cur)
			cur = []byte{}
			continue
		}
		cur = append(cur, byte(u))
	}
	return parts
}

func endOfStream(started bool) error {
	if started {
		return ErrUnterminated
	}
	return fmt.Errorf("no opening '[': %w", ErrTruncated)
}

func (f Fields) errorf(err error) error {
	return fmt.Errorf("record at offset %d: %w", f.Offset, err)
}
