//go:build !unix

package mmfile

import "os"

// Policy files are small; reading them whole is as good as mapping.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noRelease, nil
}
