//go:build !windows

package locator

import "runtime"

func defaultRoot() (string, error) {
	return "", unsupported(runtime.GOOS)
}
