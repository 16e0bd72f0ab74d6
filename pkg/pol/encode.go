package pol

import (
	"github.com/joshuapare/polkit/internal/format"
	"github.com/joshuapare/polkit/internal/regtext"
	"github.com/joshuapare/polkit/internal/writer"
	"github.com/joshuapare/polkit/pkg/types"
)

const (
	formatSignature = format.PolSignature
	formatVersion   = format.PolVersion
)

// Hive roots for .reg export.
const (
	HKEYLocalMachine = regtext.HKEYLocalMachine
	HKEYCurrentUser  = regtext.HKEYCurrentUser
)

// ExportOptions controls .reg export.
type ExportOptions = regtext.ExportOptions

// Encode lays f out as a Registry.pol file.
func Encode(f types.PolFile) ([]byte, error) {
	return writer.Encode(f)
}

// WriteFile encodes f and replaces path atomically.
func WriteFile(path string, f types.PolFile) error {
	return writer.EncodeTo(&writer.FileWriter{Path: path}, f)
}

// ExportReg renders f as .reg text.
func ExportReg(f types.PolFile, opts ExportOptions) ([]byte, error) {
	return regtext.ExportReg(f, opts)
}

// WriteReg renders f as .reg text and replaces path atomically.
func WriteReg(path string, f types.PolFile, opts ExportOptions) error {
	out, err := regtext.ExportReg(f, opts)
	if err != nil {
		return err
	}
	return (&writer.FileWriter{Path: path}).WriteFile(out)
}
