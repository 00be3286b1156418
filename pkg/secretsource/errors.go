package secretsource

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is the umbrella error for every failure to obtain a secret.
	// All other errors returned by a source's Provide wrap it.
	ErrUnavailable = errors.New("secretsource: secret unavailable")

	// ErrFileNotFound is returned by NewFile when the secret file does not exist.
	ErrFileNotFound = fmt.Errorf("%w: file not found", ErrUnavailable)

	// ErrSecretNotFound is returned when a backing store has no value under the configured key.
	ErrSecretNotFound = fmt.Errorf("%w: no value stored", ErrUnavailable)

	ErrEmptySecret   = fmt.Errorf("%w: secret is empty", ErrUnavailable)
	ErrMissingSource = errors.New("secretsource: no secret configured")
	ErrInvalidConfig = errors.New("secretsource: invalid configuration")
)
