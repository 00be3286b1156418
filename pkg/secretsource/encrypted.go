package secretsource

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/sigtoken/pkg/secrets"
)

// Encrypted unwraps a secret that the inner source stores as the base64 output
// of secrets.EncryptString. Decryption happens on every call.
type Encrypted struct {
	inner     Source
	masterKey []byte
	label     string
}

// NewEncrypted wraps inner. masterKey must be secrets.KeySize bytes.
func NewEncrypted(inner Source, masterKey []byte, label string) (*Encrypted, error) {
	if inner == nil || label == "" {
		return nil, ErrInvalidConfig
	}
	if err := secrets.ValidateKey(masterKey); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	key := make([]byte, len(masterKey))
	copy(key, masterKey)
	return &Encrypted{inner: inner, masterKey: key, label: label}, nil
}

func (e *Encrypted) Provide(ctx context.Context) ([]byte, error) {
	sealed, err := e.inner.Provide(ctx)
	if err != nil {
		return nil, err
	}

	secret, err := secrets.DecryptString(e.masterKey, e.label, strings.TrimSpace(string(sealed)))
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return []byte(secret), nil
}
