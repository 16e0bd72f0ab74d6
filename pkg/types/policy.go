package types

import (
	"strings"

	"github.com/joshuapare/polkit/internal/format"
)

// PolFile is one decoded Registry.pol file.
type PolFile struct {
	Signature uint32 // always format.PolSignature for decoded files
	Version   uint32 // preserved as read; 1 in every known file

	// Policies in file order. Later records for the same key and name
	// override earlier ones when the file is applied.
	Policies []Policy
}

// Policy is one registry key/value assignment from the file.
type Policy struct {
	Key      string  // registry key path, trailing NUL kept as decoded
	Name     string  // value name, trailing NUL kept as decoded
	Type     RegType // declared value type
	DataSize int     // payload size as stored in the file
	Data     string  // payload, one character per byte
	Comment  string  // never populated by the decoder
}

// NewPolicy builds a Policy whose DataSize and Data agree with raw.
func NewPolicy(key, name string, typ RegType, raw []byte) Policy {
	return Policy{
		Key:      key,
		Name:     name,
		Type:     typ,
		DataSize: len(raw),
		Data:     format.Widen(raw),
	}
}

// Path returns Key without trailing NUL characters.
func (p Policy) Path() string { return trimNUL(p.Key) }

// ValueName returns Name without trailing NUL characters.
func (p Policy) ValueName() string { return trimNUL(p.Name) }

// Lookup returns the record that wins for key and name: the last one in file
// order. Comparison ignores case and trailing NULs, as the registry does.
func (f PolFile) Lookup(key, name string) (Policy, bool) {
	key, name = trimNUL(key), trimNUL(name)
	for i := len(f.Policies) - 1; i >= 0; i-- {
		p := f.Policies[i]
		if strings.EqualFold(p.Path(), key) && strings.EqualFold(p.ValueName(), name) {
			return p, true
		}
	}
	return Policy{}, false
}

// Keys returns the distinct key paths in first-seen order.
func (f PolFile) Keys() []string {
	seen := make(map[string]struct{}, len(f.Policies))
	var keys []string
	for _, p := range f.Policies {
		k := strings.ToLower(p.Path())
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, p.Path())
	}
	return keys
}

func trimNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}
