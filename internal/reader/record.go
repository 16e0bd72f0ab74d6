package reader

import (
	"github.com/joshuapare/polkit/internal/buf"
	"github.com/joshuapare/polkit/internal/format"
	"github.com/joshuapare/polkit/pkg/types"
)

// decodeRecord converts tokenized fields into a Policy. Every failure mode is
// caught by the tokenizer, so this never fails.
//
// Text and payload are widened one character per byte. The payload is not
// decoded according to its type; see types.Policy.DecodeData for that.
func decodeRecord(f format.Fields) types.Policy {
	return types.Policy{
		Key:      format.Widen(f.Key()),
		Name:     format.Widen(f.Name()),
		Type:     types.RegTypeFromInt16(buf.I16LE(f.Type())),
		DataSize: int(buf.I16LE(f.Size())),
		Data:     format.Widen(f.Data()),
	}
}
