package token

import (
	"errors"

	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

var (
	// ErrFormat is returned when a token does not consist of exactly three
	// non-empty dot-separated segments.
	ErrFormat = errors.New("token: malformed token")

	// ErrDecode is returned when the payload segment is not valid unpadded
	// base64, not valid UTF-8, or not valid interchange-format syntax.
	ErrDecode = errors.New("token: cannot decode payload")

	// ErrSchema is returned when the decoded payload does not fit the target type.
	ErrSchema = errors.New("token: payload does not match schema")

	// ErrSignature is returned when the recomputed signature differs from the received one.
	ErrSignature = errors.New("token: signature mismatch")

	// ErrSourceUnavailable is returned when the secret could not be obtained.
	// It is the same value as secretsource.ErrUnavailable.
	ErrSourceUnavailable = secretsource.ErrUnavailable

	ErrEncode              = errors.New("token: cannot encode payload")
	ErrMissingSecretSource = errors.New("token: missing secret source")
	ErrNilDestination      = errors.New("token: destination must be a non-nil pointer")
)

// IsInvalidToken reports whether err means the presented token must not be
// trusted. Callers answering clients should use it instead of telling
// ErrSignature apart from ErrDecode, which would leak which check failed.
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrSchema) ||
		errors.Is(err, ErrSignature)
}
