package token

import "strings"

const separator = "."

// Parts holds the three positional segments of a token.
type Parts struct {
	Header    string
	Payload   string
	Signature string
}

// String joins the segments back into token form.
func (p Parts) String() string {
	return p.Header + separator + p.Payload + separator + p.Signature
}

// Split breaks a token into its segments.
// Returns ErrFormat unless there are exactly three non-empty segments.
func Split(token string) (Parts, error) {
	segs := strings.Split(token, separator)
	if len(segs) != 3 {
		return Parts{}, ErrFormat
	}

	for _, s := range segs {
		if s == "" {
			return Parts{}, ErrFormat
		}
	}

	return Parts{Header: segs[0], Payload: segs[1], Signature: segs[2]}, nil
}
