package token

import (
	"github.com/dmitrymomot/sigtoken/pkg/codec"
)

// Fixed header values. Only one algorithm/type pair exists, so the header is
// not configurable.
const (
	HeaderAlgorithm = "HS256"
	HeaderType      = "JWT"

	// HeaderJSON is the exact header text every token is issued with.
	HeaderJSON = `{"alg":"` + HeaderAlgorithm + `","typ":"` + HeaderType + `"}`
)

// Header is the decoded form of the first token segment.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

var headerSegment = codec.EncodeText(HeaderJSON)

// HeaderSegment returns the encoded header shared by every issued token.
func HeaderSegment() string {
	return headerSegment
}
