package mmfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenReadsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Registry.pol")
	want := []byte{'P', 'R', 'e', 'g', 0x01, 0x00, 0x00, 0x00}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, want, m.Bytes())
	require.Equal(t, len(want), m.Len())

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "second Close must be a no-op")
	require.Nil(t, m.Bytes())
}

func TestOpenZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pol")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
	require.NoError(t, m.Close())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.pol"))
	require.True(t, errors.Is(err, fs.ErrNotExist))
}
