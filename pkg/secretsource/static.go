package secretsource

import "context"

// Static serves a fixed secret held in memory.
type Static struct {
	secret []byte
}

// NewStatic copies secret into a new Static source.
func NewStatic(secret []byte) (*Static, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	s := make([]byte, len(secret))
	copy(s, secret)
	return &Static{secret: s}, nil
}

// NewStaticString is a convenience wrapper around NewStatic.
func NewStaticString(secret string) (*Static, error) {
	return NewStatic([]byte(secret))
}

// Provide returns a copy of the secret so callers cannot mutate the source.
func (s *Static) Provide(context.Context) ([]byte, error) {
	out := make([]byte, len(s.secret))
	copy(out, s.secret)
	return out, nil
}
