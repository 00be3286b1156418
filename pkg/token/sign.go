package token

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrymomot/sigtoken/pkg/codec"
)

// Sign computes the signature segment for the given header and payload segments:
// the unpadded base64 of sha256(headerSeg || payloadSeg || secret).
//
// This is a plain hash of the concatenation, not HMAC. It is kept for wire
// compatibility with existing tokens and is open to length-extension style
// attacks that HMAC would prevent.
func Sign(secret []byte, headerSeg, payloadSeg string) string {
	h := sha256.New()
	h.Write([]byte(headerSeg))
	h.Write([]byte(payloadSeg))
	h.Write(secret)
	return codec.EncodeSegment(h.Sum(nil))
}

// signatureEqual compares signature segments in constant time.
func signatureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
