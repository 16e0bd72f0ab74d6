// Package locator maps a Group Policy scope to its Registry.pol path.
package locator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/polkit/pkg/types"
)

// Scope selects the User or Machine policy store.
type Scope string

const (
	User    Scope = "User"
	Machine Scope = "Machine"
)

// FileName is the policy file inside each scope directory.
const FileName = "Registry.pol"

// ParseScope accepts "user" or "machine" in any case.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return User, nil
	case "machine":
		return Machine, nil
	default:
		return "", fmt.Errorf("unknown policy scope %q (want User or Machine)", s)
	}
}

// Locator resolves scopes under a GroupPolicy directory.
type Locator struct {
	// Root is the GroupPolicy directory. Empty selects the platform default:
	// %SystemRoot%\System32\GroupPolicy on Windows, unsupported elsewhere.
	Root string
}

// Resolve returns the policy file path for scope. The file may not exist.
func (l Locator) Resolve(scope Scope) (string, error) {
	if scope != User && scope != Machine {
		return "", fmt.Errorf("unknown policy scope %q", string(scope))
	}
	root := l.Root
	if root == "" {
		var err error
		root, err = defaultRoot()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(root, string(scope), FileName), nil
}

func unsupported(goos string) error {
	return &types.Error{
		Kind: types.ErrKindUnsupported,
		Msg:  "no default GroupPolicy directory on " + goos + "; set a root",
	}
}
