// Package format houses the low-level decoders for the Group Policy
// registry-policy file format (Registry.pol). The goal is to keep the byte
// walking focused and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// File layout (little-endian):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   4    Signature 'P' 'R' 'e' 'g' (0x67655250)
//	 0x004   4    Version
//	 0x008   ..   Records: [key;name;type;size;data]
//
// Structural delimiters and text are 16-bit code units. The data portion of
// a record is raw bytes whose length comes from the size field.
package format

const (
	// PolSignature is the magic stored in the first four bytes of every file.
	PolSignature uint32 = 0x67655250

	// PolVersion is the only format revision observed in the wild.
	PolVersion uint32 = 1

	// HeaderSize is the size of the signature plus version.
	HeaderSize = 8

	// Header field offsets.
	SignatureOffset = 0x00
	VersionOffset   = 0x04
	SignatureSize   = VersionOffset - SignatureOffset
	VersionSize     = HeaderSize - VersionOffset

	// CodeUnitSize is the width of one structural or text unit in bytes.
	CodeUnitSize = 2
)

// Structural code units.
const (
	OpenBracket  uint16 = 0x005B // '['
	Separator    uint16 = 0x003B // ';'
	CloseBracket uint16 = 0x005D // ']'
)

// Record field layout.
const (
	// FieldCount is the number of parts every record splits into.
	FieldCount = 5

	// SeparatorCount is the number of ';' units inside one record.
	SeparatorCount = FieldCount - 1

	FieldKey  = 0
	FieldName = 1
	FieldType = 2
	FieldSize = 3
	FieldData = 4

	// IntFieldSize is the number of narrowed bytes the type and size fields
	// are read from (a little-endian int16).
	IntFieldSize = 2

	// MaxDataSize is the largest payload a size field can describe.
	MaxDataSize = 1<<15 - 1
)
