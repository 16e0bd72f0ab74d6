package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file does not start with "PReg".
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnterminated indicates the stream ended inside a bracketed record.
	ErrUnterminated = errors.New("format: unterminated record")
	// ErrFieldCount indicates a record did not split into exactly five parts.
	ErrFieldCount = errors.New("format: wrong field count")
	// ErrBadType indicates a type field shorter than two bytes.
	ErrBadType = errors.New("format: invalid type field")
	// ErrBadSize indicates a size field that is missing or negative.
	ErrBadSize = errors.New("format: invalid size field")
	// ErrTrailingData indicates something other than ']' followed a payload.
	ErrTrailingData = errors.New("format: data after payload")
)
