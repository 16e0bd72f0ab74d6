package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/polkit/pkg/pol"
	"github.com/joshuapare/polkit/pkg/types"
)

func utf16z(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return append(out, 0, 0)
}

// samplePolFile is the fixture most command tests read.
func samplePolFile() types.PolFile {
	return types.PolFile{Policies: []types.Policy{
		types.NewPolicy("Software\\Policies\\Test\x00", "Enabled\x00", types.REG_DWORD, []byte{1, 0, 0, 0}),
		types.NewPolicy("Software\\Policies\\Test\x00", "Label\x00", types.REG_SZ, utf16z("hello")),
		types.NewPolicy("Software\\Policies\\Test\x00", "**del.Old\x00", types.REG_SZ, []byte{' ', 0, 0, 0}),
		types.NewPolicy("Software\\Policies\\Test\\Sub\x00", "Blob\x00", types.REG_BINARY, []byte{0xde, 0xad}),
		types.NewPolicy("Software\\Policies\\Test\x00", "Enabled\x00", types.REG_DWORD, []byte{2, 0, 0, 0}),
	}}
}

// writePolFile writes f under dir and returns its path.
func writePolFile(t *testing.T, dir, name string, f types.PolFile) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, pol.WriteFile(path, f))
	return path
}

// resetGlobals restores flag and config state between tests.
func resetGlobals(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut = false, false, false
	outputFlag, configPath, rootDir = "", "", ""
	cfg = defaultSettings()
	dumpScope, dumpKey, dumpCompact = "", "", false
	infoScope = ""
	getShowType = false
	exportScope, exportEncoding, exportBOM, exportHiveRoot = "", "UTF-8", false, ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String(), fnErr
}

// requireJSON checks that output is valid JSON and decodes it into v.
func requireJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), v), "output: %s", output)
}
