package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDumpCommand(t *testing.T) {
	path := writePolFile(t, t.TempDir(), "Registry.pol", samplePolFile())

	tests := []struct {
		name           string
		key            string
		compact        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "full",
			wantContain: []string{
				"version 1, 5 records",
				`[Software\Policies\Test]`,
				"Enabled = REG_DWORD 0x00000001 (1)",
				`Label = REG_SZ "hello"`,
				"**del.Old = REG_SZ",
				"; delete-value",
				`[Software\Policies\Test\Sub]`,
				"Blob = REG_BINARY dead",
				"Enabled = REG_DWORD 0x00000002 (2)",
			},
		},
		{
			name:           "compact",
			compact:        true,
			wantContain:    []string{`Software\Policies\Test\Sub\Blob = REG_BINARY dead`},
			wantNotContain: []string{"version 1", "["},
		},
		{
			name:           "key filter",
			key:            `software\policies\test\sub`,
			wantContain:    []string{"Blob"},
			wantNotContain: []string{"Label", "Enabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			dumpKey = tt.key
			dumpCompact = tt.compact

			output, err := captureOutput(t, func() error {
				return runDump([]string{path})
			})
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				require.Contains(t, output, want)
			}
			for _, dont := range tt.wantNotContain {
				require.NotContains(t, output, dont)
			}
		})
	}
}

func TestDumpJSON(t *testing.T) {
	resetGlobals(t)
	cfg.Output = outputJSON
	path := writePolFile(t, t.TempDir(), "Registry.pol", samplePolFile())

	output, err := captureOutput(t, func() error { return runDump([]string{path}) })
	require.NoError(t, err)

	var got struct {
		Version uint32       `json:"version"`
		Records []recordView `json:"records"`
	}
	requireJSON(t, output, &got)
	require.Equal(t, uint32(1), got.Version)
	require.Len(t, got.Records, 5)
	require.Equal(t, "Label", got.Records[1].Name)
	require.Equal(t, "hello", got.Records[1].Value)
	require.Equal(t, "delete-value", got.Records[2].Directive)
	require.Equal(t, "dead", got.Records[3].Value)
}

func TestDumpYAML(t *testing.T) {
	resetGlobals(t)
	cfg.Output = outputYAML
	path := writePolFile(t, t.TempDir(), "Registry.pol", samplePolFile())

	output, err := captureOutput(t, func() error { return runDump([]string{path}) })
	require.NoError(t, err)

	var got struct {
		Records []map[string]interface{} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &got))
	require.Len(t, got.Records, 5)
	require.Equal(t, "REG_DWORD", got.Records[0]["type"])
	require.Equal(t, 1, got.Records[0]["value"])
}

func TestDumpScope(t *testing.T) {
	resetGlobals(t)
	root := t.TempDir()
	writePolFile(t, filepath.Join(root, "User"), "Registry.pol", samplePolFile())
	cfg.GroupPolicyDir = root

	dumpScope = "user"
	output, err := captureOutput(t, func() error { return runDump(nil) })
	require.NoError(t, err)
	require.Contains(t, output, "5 records")

	// The Machine store has no file: empty, not an error.
	dumpScope = ""
	output, err = captureOutput(t, func() error { return runDump(nil) })
	require.NoError(t, err)
	require.Contains(t, output, "0 records")
}

func TestDumpMissingFile(t *testing.T) {
	resetGlobals(t)
	_, err := captureOutput(t, func() error {
		return runDump([]string{filepath.Join(t.TempDir(), "absent.pol")})
	})
	require.Error(t, err)
}
