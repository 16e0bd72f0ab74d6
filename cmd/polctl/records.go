package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/polkit/pkg/pol"
	"github.com/joshuapare/polkit/pkg/types"
)

// recordView is the structured form of one policy record.
type recordView struct {
	Key       string      `json:"key" yaml:"key"`
	Name      string      `json:"name" yaml:"name"`
	Type      string      `json:"type" yaml:"type"`
	Size      int         `json:"size" yaml:"size"`
	Value     interface{} `json:"value" yaml:"value"`
	Directive string      `json:"directive,omitempty" yaml:"directive,omitempty"`
}

func viewOf(p types.Policy) recordView {
	v := recordView{
		Key:   p.Path(),
		Name:  p.ValueName(),
		Type:  p.Type.String(),
		Size:  p.DataSize,
		Value: valueOf(p),
	}
	if d, _ := p.Directive(); d != types.DirectiveSet {
		v.Directive = d.String()
	}
	return v
}

// valueOf decodes the payload by type, falling back to hex when the payload
// does not fit its declared type.
func valueOf(p types.Policy) interface{} {
	v, err := p.DecodeData()
	if err == nil {
		if b, ok := v.([]byte); ok {
			return hex.EncodeToString(b)
		}
		return v
	}
	raw, err := p.RawData()
	if err != nil {
		return p.Data
	}
	return hex.EncodeToString(raw)
}

func formatValue(p types.Policy) string {
	switch v := valueOf(p).(type) {
	case string:
		if p.Type == types.REG_SZ || p.Type == types.REG_EXPAND_SZ || p.Type == types.REG_LINK {
			return fmt.Sprintf("%q", v)
		}
		if len(v) > 64 {
			return fmt.Sprintf("%s... (%d bytes)", v[:64], p.DataSize)
		}
		return v
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case uint32:
		return fmt.Sprintf("0x%08x (%d)", v, v)
	case uint64:
		return fmt.Sprintf("0x%016x (%d)", v, v)
	default:
		return fmt.Sprint(v)
	}
}

func displayName(name string) string {
	if name == "" {
		return "(Default)"
	}
	return name
}

// loadSource loads the file named by args, or the store for scope when no
// file is given. The returned label names what was loaded.
func loadSource(args []string, scope string) (types.PolFile, string, error) {
	l := newLoader()
	if len(args) > 0 {
		printVerbose("Opening policy file: %s\n", args[0])
		f, err := l.Load(args[0])
		if err != nil {
			return types.PolFile{}, "", fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		return f, args[0], nil
	}

	if scope == "" {
		scope = cfg.DefaultScope
	}
	s, err := pol.ParseScope(scope)
	if err != nil {
		return types.PolFile{}, "", err
	}
	path, err := l.Resolve(s)
	if err != nil {
		return types.PolFile{}, "", fmt.Errorf("failed to resolve %s store: %w", s, err)
	}
	printVerbose("Opening %s store: %s\n", s, path)
	f, err := l.LoadStore(s)
	if err != nil {
		return types.PolFile{}, "", fmt.Errorf("failed to load %s store: %w", s, err)
	}
	return f, path, nil
}

// underKey reports whether path is key or one of its subkeys, ignoring case.
func underKey(path, key string) bool {
	key = strings.TrimSuffix(key, `\`)
	if len(path) < len(key) || !strings.EqualFold(path[:len(key)], key) {
		return false
	}
	return len(path) == len(key) || path[len(key)] == '\\'
}
