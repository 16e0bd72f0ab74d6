package pol

import (
	"io"

	"github.com/joshuapare/polkit/internal/reader"
	"github.com/joshuapare/polkit/pkg/types"
)

// Decode reads a complete policy file from r.
//
// Errors are *types.Error: ErrNotPolFile when the signature is wrong,
// ErrMalformed for structural problems, ErrIO when r fails.
func Decode(r io.Reader) (types.PolFile, error) {
	return reader.Decode(r)
}

// DecodeBytes decodes a complete policy file held in memory.
func DecodeBytes(data []byte) (types.PolFile, error) {
	return reader.DecodeBytes(data)
}
