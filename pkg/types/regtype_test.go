package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_NONE", regType: REG_NONE, expected: "REG_NONE"},
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_BINARY", regType: REG_BINARY, expected: "REG_BINARY"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_DWORD_LE alias", regType: REG_DWORD_LE, expected: "REG_DWORD"},
		{name: "REG_DWORD_BE", regType: REG_DWORD_BE, expected: "REG_DWORD_BE"},
		{name: "REG_LINK", regType: REG_LINK, expected: "REG_LINK"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_RESOURCE_LIST", regType: REG_RESOURCE_LIST, expected: "REG_RESOURCE_LIST"},
		{
			name:     "REG_FULL_RESOURCE_DESCRIPTOR",
			regType:  REG_FULL_RESOURCE_DESCRIPTOR,
			expected: "REG_FULL_RESOURCE_DESCRIPTOR",
		},
		{
			name:     "REG_RESOURCE_REQUIREMENTS_LIST",
			regType:  REG_RESOURCE_REQUIREMENTS_LIST,
			expected: "REG_RESOURCE_REQUIREMENTS_LIST",
		},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		// Vendor codes stay representable.
		{name: "Unknown type 12", regType: RegType(12), expected: "UNKNOWN_TYPE_12"},
		{name: "Unknown type 255", regType: RegType(255), expected: "UNKNOWN_TYPE_255"},
		{name: "Negative field -1", regType: RegTypeFromInt16(-1), expected: "UNKNOWN_TYPE_-1"},
		{name: "Negative field min", regType: RegTypeFromInt16(-32768), expected: "UNKNOWN_TYPE_-32768"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.regType.String()
			if result != tt.expected {
				t.Errorf("RegType(%d).String() = %q, expected %q (as int32: %d)",
					uint32(tt.regType), result, tt.expected, int32(tt.regType))
			}
		})
	}
}

func TestRegType_Known(t *testing.T) {
	require.True(t, REG_QWORD.Known())
	require.False(t, RegType(42).Known())
}

func TestRegTypeFromInt16(t *testing.T) {
	require.Equal(t, REG_DWORD, RegTypeFromInt16(4))
	require.Equal(t, RegType(0xFFFFFFFF), RegTypeFromInt16(-1))
}

func TestParseRegType(t *testing.T) {
	tests := []struct {
		in   string
		want RegType
	}{
		{"REG_SZ", REG_SZ},
		{"reg_multi_sz", REG_MULTI_SZ},
		{" REG_DWORD ", REG_DWORD},
		{"REG_DWORD_LITTLE_ENDIAN", REG_DWORD},
		{"REG_DWORD_BIG_ENDIAN", REG_DWORD_BE},
		{"REG_QWORD_LITTLE_ENDIAN", REG_QWORD},
	}
	for _, tt := range tests {
		got, err := ParseRegType(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRegType("REG_NOPE")
	require.Error(t, err)
}
