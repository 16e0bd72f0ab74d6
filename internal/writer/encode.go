package writer

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/polkit/internal/buf"
	"github.com/joshuapare/polkit/internal/format"
	"github.com/joshuapare/polkit/pkg/types"
)

var (
	errDelimiter = errors.New("byte collides with a record delimiter")
	errWideChar  = errors.New("character above U+00FF")
	errRange     = errors.New("outside int16 range")
	errSize      = errors.New("data size")
	errSignature = errors.New("signature is not PReg")
)

// Encode lays f out as a Registry.pol file. A zero Signature is written as
// the PReg magic.
//
// The decoder narrows every text code unit to a byte and reads type and size
// as the int16 of two narrowed units, so records are written the same way:
// text one byte per unit, type and size as two units (REG_DWORD becomes
// 04 00 00 00, as in files written by Windows). Records the decoder could
// not read back identically are rejected with types.ErrUnencodable.
func Encode(f types.PolFile) ([]byte, error) {
	sig := f.Signature
	if sig == 0 {
		sig = format.PolSignature
	}
	if sig != format.PolSignature {
		return nil, &types.Error{Kind: types.ErrKindEncode, Msg: fmt.Sprintf("signature 0x%08x", sig), Err: errSignature}
	}

	out := format.AppendHeader(make([]byte, 0, estimateSize(f)), format.Header{Signature: sig, Version: f.Version})
	for i, p := range f.Policies {
		var err error
		out, err = appendRecord(out, p)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindEncode, Msg: fmt.Sprintf("record %d (%s)", i, p.Path()), Err: err}
		}
	}
	return out, nil
}

// EncodeTo encodes f and hands the bytes to sink.
func EncodeTo(sink Sink, f types.PolFile) error {
	b, err := Encode(f)
	if err != nil {
		return err
	}
	return sink.WritePol(b)
}

func appendRecord(dst []byte, p types.Policy) ([]byte, error) {
	key, err := textBytes("key", p.Key)
	if err != nil {
		return nil, err
	}
	name, err := textBytes("name", p.Name)
	if err != nil {
		return nil, err
	}
	typ, err := intField("type", int64(int32(p.Type)))
	if err != nil {
		return nil, err
	}
	payload, err := p.RawData()
	if err != nil {
		return nil, err
	}
	if p.DataSize != len(payload) {
		return nil, fmt.Errorf("%w: DataSize %d but payload has %d bytes", errSize, p.DataSize, len(payload))
	}
	if len(payload) > format.MaxDataSize {
		return nil, fmt.Errorf("%w: %d exceeds %d", errSize, len(payload), format.MaxDataSize)
	}
	size, err := intField("size", int64(len(payload)))
	if err != nil {
		return nil, err
	}

	dst = buf.PutU16LE(dst, format.OpenBracket)
	dst = appendUnits(dst, key)
	dst = buf.PutU16LE(dst, format.Separator)
	dst = appendUnits(dst, name)
	dst = buf.PutU16LE(dst, format.Separator)
	dst = appendUnits(dst, typ)
	dst = buf.PutU16LE(dst, format.Separator)
	dst = appendUnits(dst, size)
	dst = buf.PutU16LE(dst, format.Separator)
	dst = append(dst, payload...)
	return buf.PutU16LE(dst, format.CloseBracket), nil
}

func textBytes(field, s string) ([]byte, error) {
	b, err := format.Narrow(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, errWideChar)
	}
	if err := checkDelimiters(field, b); err != nil {
		return nil, err
	}
	return b, nil
}

// intField returns the two narrowed bytes the decoder reads v back from.
func intField(field string, v int64) ([]byte, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return nil, fmt.Errorf("%s %d: %w", field, v, errRange)
	}
	b := buf.PutU16LE(nil, uint16(int16(v)))
	if err := checkDelimiters(field, b); err != nil {
		return nil, err
	}
	return b, nil
}

func checkDelimiters(field string, b []byte) error {
	for i, c := range b {
		if uint16(c) == format.Separator || uint16(c) == format.CloseBracket {
			return fmt.Errorf("%s byte %d (0x%02x): %w", field, i, c, errDelimiter)
		}
	}
	return nil
}

func appendUnits(dst, b []byte) []byte {
	for _, c := range b {
		dst = buf.PutU16LE(dst, uint16(c))
	}
	return dst
}

// estimateSize uses only the lengths of strings actually held. DataSize is
// unchecked at this point.
func estimateSize(f types.PolFile) int {
	n := format.HeaderSize
	for _, p := range f.Policies {
		n += (len(p.Key)+len(p.Name)+4+6)*format.CodeUnitSize + len(p.Data)
	}
	return n
}
