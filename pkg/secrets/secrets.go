package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// EncryptBytes seals data with the key derived for label.
// Output layout: nonce || ciphertext || tag.
func EncryptBytes(masterKey []byte, label string, data []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey, label, ErrEncryptionFailed)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	// The label is bound as additional data so a blob cannot be replayed under another label.
	return aead.Seal(nonce, nonce, data, []byte(label)), nil
}

// DecryptBytes opens a blob produced by EncryptBytes with the same master key and label.
func DecryptBytes(masterKey []byte, label string, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey, label, ErrDecryptionFailed)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	if len(ciphertext) < nonceSize+aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, []byte(label))
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// EncryptString seals plaintext and returns it base64-encoded.
func EncryptString(masterKey []byte, label, plaintext string) (string, error) {
	ct, err := EncryptBytes(masterKey, label, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// DecryptString reverses EncryptString.
func DecryptString(masterKey []byte, label, ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	pt, err := DecryptBytes(masterKey, label, raw)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

func newAEAD(masterKey []byte, label string, failure error) (cipher.AEAD, error) {
	key, err := deriveKey(masterKey, label)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(failure, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(failure, err)
	}

	return aead, nil
}
