package secretsource_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken/pkg/secrets"
	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

func TestEncrypted(t *testing.T) {
	t.Parallel()
	master, err := secrets.GenerateKey()
	require.NoError(t, err)

	sealed, err := secrets.EncryptString(master, "token-signing", "topsecret")
	require.NoError(t, err)
	inner, err := secretsource.NewStaticString(sealed + "\n")
	require.NoError(t, err)

	t.Run("decrypts", func(t *testing.T) {
		t.Parallel()
		src, err := secretsource.NewEncrypted(inner, master, "token-signing")
		require.NoError(t, err)
		got, err := src.Provide(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("topsecret"), got)
	})

	t.Run("wrong label", func(t *testing.T) {
		t.Parallel()
		src, err := secretsource.NewEncrypted(inner, master, "other")
		require.NoError(t, err)
		_, err = src.Provide(context.Background())
		assert.ErrorIs(t, err, secretsource.ErrUnavailable)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("not a sealed value", func(t *testing.T) {
		t.Parallel()
		plain, err := secretsource.NewStaticString("topsecret")
		require.NoError(t, err)
		src, err := secretsource.NewEncrypted(plain, master, "token-signing")
		require.NoError(t, err)
		_, err = src.Provide(context.Background())
		assert.ErrorIs(t, err, secretsource.ErrUnavailable)
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})

	t.Run("inner failure propagates", func(t *testing.T) {
		t.Parallel()
		failing := secretsource.Func(func(context.Context) ([]byte, error) {
			return nil, secretsource.ErrSecretNotFound
		})
		src, err := secretsource.NewEncrypted(failing, master, "token-signing")
		require.NoError(t, err)
		_, err = src.Provide(context.Background())
		assert.ErrorIs(t, err, secretsource.ErrSecretNotFound)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		_, err := secretsource.NewEncrypted(inner, []byte("short"), "token-signing")
		assert.ErrorIs(t, err, secretsource.ErrInvalidConfig)
		assert.ErrorIs(t, err, secrets.ErrInvalidMasterKey)

		_, err = secretsource.NewEncrypted(nil, master, "token-signing")
		assert.ErrorIs(t, err, secretsource.ErrInvalidConfig)
	})
}
