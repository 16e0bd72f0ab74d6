// Package regtext renders decoded policy files as .reg text.
package regtext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/polkit/pkg/types"
)

var errUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// ExportOptions controls .reg export.
type ExportOptions struct {
	// HiveRoot prefixes every key. Default: HKEY_LOCAL_MACHINE.
	HiveRoot string

	// OutputEncoding is "UTF-8" (default) or "UTF-16LE".
	OutputEncoding string

	// WithBOM writes a byte-order mark. Only meaningful for UTF-16LE.
	WithBOM bool
}

// ExportReg emits f as .reg text. Keys appear in first-seen order with their
// records in file order, so importing the result applies them in the same
// sequence. Directives with no .reg equivalent are kept as comments.
func ExportReg(f types.PolFile, opts ExportOptions) ([]byte, error) {
	root := opts.HiveRoot
	if root == "" {
		root = HKEYLocalMachine
	}

	var buf bytes.Buffer
	buf.WriteString(RegFileHeader + CRLF + CRLF)
	for _, group := range groupByKey(f.Policies) {
		buf.WriteString(KeyOpenBracket)
		buf.WriteString(root + Backslash + group.key)
		buf.WriteString(KeyCloseBracket + CRLF)
		for _, p := range group.records {
			if err := emitPolicy(&buf, p); err != nil {
				return nil, fmt.Errorf("%s\\%s: %w", group.key, p.ValueName(), err)
			}
		}
		buf.WriteString(CRLF)
	}

	switch strings.ToUpper(opts.OutputEncoding) {
	case "", EncodingUTF8:
		return buf.Bytes(), nil
	case EncodingUTF16LE:
		return encodeUTF16LE(buf.Bytes(), opts.WithBOM)
	default:
		return nil, errUnsupportedEncoding
	}
}

type keyGroup struct {
	key     string
	records []types.Policy
}

func groupByKey(policies []types.Policy) []*keyGroup {
	index := make(map[string]*keyGroup)
	var groups []*keyGroup
	for _, p := range policies {
		k := strings.ToLower(p.Path())
		g, ok := index[k]
		if !ok {
			g = &keyGroup{key: p.Path()}
			index[k] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, p)
	}
	return groups
}

func emitPolicy(buf *bytes.Buffer, p types.Policy) error {
	directive, target := p.Directive()
	switch directive {
	case types.DirectiveSet:
	case types.DirectiveSoft:
		p.Name = target
	case types.DirectiveDeleteValue:
		writeName(buf, target)
		buf.WriteString(DeleteValueToken + CRLF)
		return nil
	default:
		buf.WriteString(CommentPrefix + " " + directive.String() + " " + p.ValueName() + CRLF)
		return nil
	}

	writeName(buf, p.ValueName())
	return emitData(buf, p)
}

func writeName(buf *bytes.Buffer, name string) {
	if name == "" {
		buf.WriteString(DefaultValuePrefix)
		return
	}
	buf.WriteString(Quote)
	buf.WriteString(escapeString(name))
	buf.WriteString(Quote + ValueAssignment)
}

func emitData(buf *bytes.Buffer, p types.Policy) error {
	raw, err := p.RawData()
	if err != nil {
		return err
	}
	switch p.Type {
	case types.REG_SZ:
		if s, err := p.DataString(); err == nil {
			buf.WriteString(Quote + escapeString(s) + Quote + CRLF)
			return nil
		}
	case types.REG_DWORD:
		if dw, err := p.DataDWORD(); err == nil && len(raw) == 4 {
			buf.WriteString(DWORDPrefix)
			fmt.Fprintf(buf, DWORDHexFormat, dw)
			buf.WriteString(CRLF)
			return nil
		}
	case types.REG_BINARY:
		buf.WriteString(HexPrefix + formatHex(raw) + CRLF)
		return nil
	}
	// Everything else keeps its exact bytes and type code.
	fmt.Fprintf(buf, HexTypeFormat, uint32(p.Type))
	buf.WriteString(formatHex(raw) + CRLF)
	return nil
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

func formatHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf(HexByteFormat, b)
	}
	return strings.Join(parts, HexByteSeparator)
}

func encodeUTF16LE(text []byte, withBOM bool) ([]byte, error) {
	bom := unicode.IgnoreBOM
	if withBOM {
		bom = unicode.UseBOM
	}
	return unicode.UTF16(unicode.LittleEndian, bom).NewEncoder().Bytes(text)
}
