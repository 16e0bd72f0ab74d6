package format

import "golang.org/x/text/encoding/charmap"

// Text fields and payloads are surfaced one character per byte. Latin-1 is
// exactly that mapping in both directions.
var latin1 = charmap.ISO8859_1

// Widen returns b as text, one character per byte.
func Widen(b []byte) string {
	if isASCII(b) {
		return string(b)
	}
	// Latin-1 maps all 256 byte values, so decoding cannot fail.
	out, _ := latin1.NewDecoder().Bytes(b)
	return string(out)
}

// Narrow inverts Widen. It fails when s holds a character above U+00FF.
func Narrow(s string) ([]byte, error) {
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	return latin1.NewEncoder().Bytes([]byte(s))
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
