package secrets

import "errors"

var (
	ErrInvalidMasterKey = errors.New("secrets: master key must be 32 bytes")
	ErrEmptyLabel       = errors.New("secrets: label must not be empty")

	ErrEncryptionFailed  = errors.New("secrets: encryption failed")
	ErrDecryptionFailed  = errors.New("secrets: decryption failed")
	ErrInvalidCiphertext = errors.New("secrets: invalid ciphertext format")

	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
)
