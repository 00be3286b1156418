package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size (AES-256).
	KeySize = 32

	// hkdfInfo separates keys derived here from other uses of the master key.
	hkdfInfo = "sigtoken-secrets-v1"
)

// ValidateKey checks the master key length.
func ValidateKey(masterKey []byte) error {
	if len(masterKey) != KeySize {
		return ErrInvalidMasterKey
	}
	return nil
}

// deriveKey derives the data key for label from the master key with HKDF-SHA256.
// The label is used as the HKDF salt so each label gets an independent key.
// Callers must clearBytes the result.
func deriveKey(masterKey []byte, label string) ([]byte, error) {
	if err := ValidateKey(masterKey); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, ErrEmptyLabel
	}

	r := hkdf.New(sha256.New, masterKey, []byte(label), []byte(hkdfInfo))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return key, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateKey returns a random 32-byte master key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
