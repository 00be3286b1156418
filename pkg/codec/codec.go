package codec

import (
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const padChar = "="

// segmentEncoding rejects non-zero trailing bits so every segment has exactly
// one byte representation.
var segmentEncoding = base64.StdEncoding.Strict()

// EncodeSegment encodes b with the standard base64 alphabet and strips the padding.
func EncodeSegment(b []byte) string {
	return strings.TrimRight(base64.StdEncoding.EncodeToString(b), padChar)
}

// DecodeSegment restores the padding of s and decodes it.
// Returns ErrDecode for characters outside the alphabet or impossible lengths.
func DecodeSegment(s string) ([]byte, error) {
	// The decoder skips CR and LF, and the encoder never emits '='.
	if strings.ContainsAny(s, "=\r\n") {
		return nil, ErrDecode
	}

	data, err := segmentEncoding.DecodeString(RestorePadding(s))
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	return data, nil
}

// RestorePadding appends '=' characters to s, 6 bits at a time, until the
// encoded bit count is a multiple of 8.
func RestorePadding(s string) string {
	bits := 6 * len(s)
	if bits%8 == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 3)
	sb.WriteString(s)
	for bits%8 != 0 {
		bits += 6
		sb.WriteString(padChar)
	}

	return sb.String()
}

// EncodeText encodes the UTF-8 bytes of s as a segment.
func EncodeText(s string) string {
	return EncodeSegment([]byte(s))
}

// DecodeText decodes a segment and validates the result as UTF-8.
func DecodeText(s string) (string, error) {
	data, err := DecodeSegment(s)
	if err != nil {
		return "", err
	}

	if err := ValidateUTF8(data); err != nil {
		return "", err
	}

	return string(data), nil
}

// ValidateUTF8 reports ErrDecode joined with ErrInvalidUTF8 when data holds an
// invalid UTF-8 sequence.
func ValidateUTF8(data []byte) error {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return errors.Join(ErrDecode, ErrInvalidUTF8, err)
	}
	return nil
}
