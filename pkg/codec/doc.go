// Package codec converts between raw bytes and the unpadded base64 segments
// used inside signed tokens.
//
// Segments use the standard base64 alphabet (A-Z, a-z, 0-9, '+', '/') with
// every trailing '=' removed. Padding is reconstructed from the segment length
// alone when decoding, so a segment never contains '=' or the '.' token
// separator.
//
// # Usage
//
//	seg := codec.EncodeSegment([]byte(`{"id":"42"}`))
//	raw, err := codec.DecodeSegment(seg)
//	if err != nil {
//		// errors.Is(err, codec.ErrDecode)
//	}
//
// Text helpers pass through UTF-8 and reject invalid byte sequences on decode:
//
//	seg := codec.EncodeText("héllo")
//	s, err := codec.DecodeText(seg)
//
// All functions are pure and safe for concurrent use.
package codec
