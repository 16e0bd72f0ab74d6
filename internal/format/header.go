package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/polkit/internal/buf"
)

// Header is the fixed eight-byte prefix of a policy file.
type Header struct {
	Signature uint32
	Version   uint32
}

// ReadHeader consumes the header from c. The signature is checked before the
// version is read, so a foreign file never gets further than four bytes.
func ReadHeader(c *buf.Cursor) (Header, error) {
	if n := c.Remaining(); n < SignatureSize {
		// Too short for a signature, but bytes that already differ from
		// the magic still make it a foreign file.
		got, _ := c.ReadN(n)
		if !bytes.Equal(got, buf.PutU32LE(nil, PolSignature)[:n]) {
			return Header{}, fmt.Errorf("header signature % x: %w", got, ErrSignatureMismatch)
		}
		return Header{}, fmt.Errorf("header signature: %w", ErrTruncated)
	}
	sig, _ := c.ReadU32()
	if sig != PolSignature {
		return Header{}, fmt.Errorf("header signature 0x%08x: %w", sig, ErrSignatureMismatch)
	}
	ver, ok := c.ReadU32()
	if !ok {
		return Header{}, fmt.Errorf("header version: %w", ErrTruncated)
	}
	return Header{Signature: sig, Version: ver}, nil
}

// AppendHeader appends the encoded header to dst.
func AppendHeader(dst []byte, h Header) []byte {
	dst = buf.PutU32LE(dst, h.Signature)
	return buf.PutU32LE(dst, h.Version)
}
