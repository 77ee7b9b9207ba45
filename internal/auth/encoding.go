package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrMalformedSignature is returned when a transport-encoded signature
// cannot be decoded back to raw bytes.
var ErrMalformedSignature = errors.New("malformed signature encoding")

// EncodeSignature converts raw signature bytes to the hub's wire format:
// each byte is read as an ISO-8859-1 code point, the resulting text is
// encoded as UTF-8 and the UTF-8 bytes are Base64 encoded.
func EncodeSignature(raw []byte) string {
	text := make([]byte, 0, 2*len(raw))
	for _, b := range raw {
		text = utf8.AppendRune(text, charmap.ISO8859_1.DecodeByte(b))
	}
	return base64.StdEncoding.EncodeToString(text)
}

// DecodeSignature reverses EncodeSignature. Invalid Base64 (including
// non-zero padding bits), invalid UTF-8 and code points outside ISO-8859-1
// are all ErrMalformedSignature.
func DecodeSignature(encoded string) ([]byte, error) {
	text, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedSignature, err)
	}
	if !utf8.Valid(text) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedSignature)
	}

	raw := make([]byte, 0, len(text))
	for i, r := range string(text) {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: code point U+%04X at offset %d is not ISO-8859-1", ErrMalformedSignature, r, i)
		}
		raw = append(raw, b)
	}
	return raw, nil
}
