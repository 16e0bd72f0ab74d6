package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed records (field count, sizes, truncation)
	ErrKindSignature                  // not a policy file at all (bad "PReg" magic)
	ErrKindIO                         // byte source unreadable
	ErrKindNotFound                   // missing file or record
	ErrKindType                       // requested decode doesn't match the record's RegType
	ErrKindUnsupported                // valid request this platform can't serve
	ErrKindEncode                     // record can't be written in the legacy layout
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindSignature:
		return "signature"
	case ErrKindIO:
		return "io"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindType:
		return "type"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindEncode:
		return "encode"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrMalformed)
// works on errors built at the failure site. A signature error is a format
// error as well.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if e.Kind == t.Kind {
		return true
	}
	return e.Kind == ErrKindSignature && t.Kind == ErrKindFormat
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotPolFile indicates the data lacks the "PReg" signature.
	ErrNotPolFile = &Error{Kind: ErrKindSignature, Msg: "not a registry policy file (bad PReg signature)"}
	// ErrMalformed indicates a structural violation inside the record stream.
	ErrMalformed = &Error{Kind: ErrKindFormat, Msg: "malformed policy file"}
	// ErrIO indicates the byte source could not be read.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "policy file unreadable"}
	// ErrNotFound indicates a missing file or record.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrTypeMismatch indicates the requested decode doesn't match the record type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "policy data has different type"}
	// ErrUnsupported indicates a recognized but unsupported request.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported"}
	// ErrUnencodable indicates a record the legacy layout can't carry.
	ErrUnencodable = &Error{Kind: ErrKindEncode, Msg: "policy not encodable"}
)

// -----------------------------------------------------------------------------
// Registry value types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.) Values outside the list are
// kept as-is; vendors are free to store their own codes.
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_QWORD_LE                   RegType = 11 // alias for clarity
)

var regTypeNames = map[RegType]string{
	REG_NONE:                       "REG_NONE",
	REG_SZ:                         "REG_SZ",
	REG_EXPAND_SZ:                  "REG_EXPAND_SZ",
	REG_BINARY:                     "REG_BINARY",
	REG_DWORD:                      "REG_DWORD",
	REG_DWORD_BE:                   "REG_DWORD_BE",
	REG_LINK:                       "REG_LINK",
	REG_MULTI_SZ:                   "REG_MULTI_SZ",
	REG_RESOURCE_LIST:              "REG_RESOURCE_LIST",
	REG_FULL_RESOURCE_DESCRIPTOR:   "REG_FULL_RESOURCE_DESCRIPTOR",
	REG_RESOURCE_REQUIREMENTS_LIST: "REG_RESOURCE_REQUIREMENTS_LIST",
	REG_QWORD:                      "REG_QWORD",
}

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	if name, ok := regTypeNames[t]; ok {
		return name
	}
	// Signed, so codes decoded from a negative field read naturally.
	return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
}

// Known reports whether t is one of the Windows-defined types.
func (t RegType) Known() bool {
	_, ok := regTypeNames[t]
	return ok
}

// RegTypeFromInt16 maps a decoded 16-bit type field onto RegType, sign
// extending negative codes.
func RegTypeFromInt16(v int16) RegType {
	return RegType(uint32(int32(v)))
}

// ParseRegType accepts a type name ("REG_DWORD", "reg_sz", "REG_DWORD_LITTLE_ENDIAN").
func ParseRegType(s string) (RegType, error) {
	switch upper := strings.ToUpper(strings.TrimSpace(s)); upper {
	case "REG_DWORD_LITTLE_ENDIAN", "REG_DWORD_LE":
		return REG_DWORD, nil
	case "REG_DWORD_BIG_ENDIAN":
		return REG_DWORD_BE, nil
	case "REG_QWORD_LITTLE_ENDIAN", "REG_QWORD_LE":
		return REG_QWORD, nil
	default:
		for t, name := range regTypeNames {
			if name == upper {
				return t, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown registry type %q", s)
}
