package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/polkit/internal/buf"
	"github.com/joshuapare/polkit/internal/format"
)

// RegistryValue is the conventional meaning of a DWORD policy toggle. There
// is no "Not Configured" value: an unconfigured policy has no record.
type RegistryValue uint32

const (
	Disabled RegistryValue = 0
	Enabled  RegistryValue = 1
)

func (v RegistryValue) String() string {
	switch v {
	case Disabled:
		return "Disabled"
	case Enabled:
		return "Enabled"
	default:
		return fmt.Sprintf("RegistryValue(%d)", uint32(v))
	}
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// RawData returns the payload bytes Data was widened from.
func (p Policy) RawData() ([]byte, error) {
	raw, err := format.Narrow(p.Data)
	if err != nil {
		return nil, &Error{Kind: ErrKindFormat, Msg: "data is not byte-widened text", Err: err}
	}
	return raw, nil
}

// DataString decodes a REG_SZ, REG_EXPAND_SZ or REG_LINK payload as
// UTF-16LE, dropping the terminator.
func (p Policy) DataString() (string, error) {
	if err := p.expect(REG_SZ, REG_EXPAND_SZ, REG_LINK); err != nil {
		return "", err
	}
	raw, err := p.RawData()
	if err != nil {
		return "", err
	}
	s, err := decodeUTF16(raw)
	if err != nil {
		return "", err
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s, nil
}

// DataStrings decodes a REG_MULTI_SZ payload. The list ends at the first
// empty string.
func (p Policy) DataStrings() ([]string, error) {
	if err := p.expect(REG_MULTI_SZ); err != nil {
		return nil, err
	}
	raw, err := p.RawData()
	if err != nil {
		return nil, err
	}
	s, err := decodeUTF16(raw)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, part := range strings.Split(s, "\x00") {
		if part == "" {
			break
		}
		out = append(out, part)
	}
	return out, nil
}

// DataDWORD decodes a REG_DWORD (little-endian) or REG_DWORD_BE payload.
func (p Policy) DataDWORD() (uint32, error) {
	if err := p.expect(REG_DWORD, REG_DWORD_BE); err != nil {
		return 0, err
	}
	raw, err := p.RawData()
	if err != nil {
		return 0, err
	}
	if len(raw) < 4 {
		return 0, &Error{Kind: ErrKindFormat, Msg: fmt.Sprintf("dword payload has %d bytes", len(raw))}
	}
	if p.Type == REG_DWORD_BE {
		return buf.U32BE(raw), nil
	}
	return buf.U32LE(raw), nil
}

// DataQWORD decodes a REG_QWORD payload.
func (p Policy) DataQWORD() (uint64, error) {
	if err := p.expect(REG_QWORD); err != nil {
		return 0, err
	}
	raw, err := p.RawData()
	if err != nil {
		return 0, err
	}
	if len(raw) < 8 {
		return 0, &Error{Kind: ErrKindFormat, Msg: fmt.Sprintf("qword payload has %d bytes", len(raw))}
	}
	return buf.U64LE(raw), nil
}

// DecodeData returns the payload as the Go value its type implies: string,
// []string, uint32, uint64, or []byte for everything else.
func (p Policy) DecodeData() (any, error) {
	switch p.Type {
	case REG_SZ, REG_EXPAND_SZ, REG_LINK:
		return p.DataString()
	case REG_MULTI_SZ:
		return p.DataStrings()
	case REG_DWORD, REG_DWORD_BE:
		return p.DataDWORD()
	case REG_QWORD:
		return p.DataQWORD()
	default:
		return p.RawData()
	}
}

// State interprets a DWORD toggle.
func (p Policy) State() (RegistryValue, error) {
	v, err := p.DataDWORD()
	if err != nil {
		return 0, err
	}
	return RegistryValue(v), nil
}

func (p Policy) expect(want ...RegType) error {
	for _, t := range want {
		if p.Type == t {
			return nil
		}
	}
	return &Error{Kind: ErrKindType, Msg: fmt.Sprintf("%s record %s\\%s", p.Type, p.Path(), p.ValueName())}
}

func decodeUTF16(raw []byte) (string, error) {
	if len(raw)%format.CodeUnitSize != 0 {
		return "", &Error{Kind: ErrKindFormat, Msg: fmt.Sprintf("utf-16 payload has odd length %d", len(raw))}
	}
	out, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &Error{Kind: ErrKindFormat, Msg: "utf-16 payload", Err: err}
	}
	return string(out), nil
}
