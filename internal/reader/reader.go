// Package reader decodes Registry.pol bytes into types.PolFile.
//
// Decoding is a three-state machine: the header is validated first, then
// records are tokenized and decoded until the input is exhausted. Any failure
// aborts the whole decode; records decoded before the failure are dropped.
// Nothing here logs; callers receive typed errors and decide.
package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/polkit/internal/buf"
	"github.com/joshuapare/polkit/internal/format"
	"github.com/joshuapare/polkit/pkg/types"
)

type decodeState int

const (
	stateHeader decodeState = iota
	stateRecords
	stateDone
)

// Decode reads all of r and decodes it.
func Decode(r io.Reader) (types.PolFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.PolFile{}, &types.Error{Kind: types.ErrKindIO, Msg: "read policy stream", Err: err}
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a complete policy file held in memory. The returned
// PolFile does not alias data.
func DecodeBytes(data []byte) (types.PolFile, error) {
	var (
		c     = buf.NewCursor(data)
		out   types.PolFile
		state = stateHeader
	)
	for state != stateDone {
		switch state {
		case stateHeader:
			hdr, err := format.ReadHeader(c)
			if err != nil {
				return types.PolFile{}, headerError(err)
			}
			out.Signature = hdr.Signature
			out.Version = hdr.Version
			out.Policies = []types.Policy{}
			state = stateRecords

		case stateRecords:
			if c.Done() {
				state = stateDone
				continue
			}
			fields, err := format.ScanFields(c)
			if err != nil {
				return types.PolFile{}, &types.Error{
					Kind: types.ErrKindFormat,
					Msg:  fmt.Sprintf("record %d", len(out.Policies)),
					Err:  err,
				}
			}
			out.Policies = append(out.Policies, decodeRecord(fields))
		}
	}
	return out, nil
}

func headerError(err error) error {
	if errors.Is(err, format.ErrSignatureMismatch) {
		return &types.Error{Kind: types.ErrKindSignature, Msg: types.ErrNotPolFile.Msg, Err: err}
	}
	return &types.Error{Kind: types.ErrKindFormat, Msg: "policy header", Err: err}
}
