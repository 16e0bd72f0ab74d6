//go:build windows

package locator

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func defaultRoot() (string, error) {
	sys, err := windows.GetSystemDirectory()
	if err != nil {
		return "", fmt.Errorf("locate system directory: %w", err)
	}
	return filepath.Join(sys, "GroupPolicy"), nil
}
