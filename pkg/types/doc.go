// Package types defines the decoded form of a Group Policy registry-policy
// file (Registry.pol): the PolFile header plus its ordered Policy records,
// the RegType enumeration, and typed errors with stable categories.
//
// Policy.Data is the payload widened one byte to one character, whatever the
// declared type. Callers that need the real value use the explicit helpers
// (DataString, DataDWORD, DecodeData, ...), which re-derive it from the raw
// bytes and the record's RegType.
package types
