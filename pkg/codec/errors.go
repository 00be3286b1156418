package codec

import "errors"

var (
	ErrDecode      = errors.New("codec: malformed segment")
	ErrInvalidUTF8 = errors.New("codec: segment is not valid UTF-8")
)
