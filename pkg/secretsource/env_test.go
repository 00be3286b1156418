package secretsource_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken/pkg/config"
	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("static", func(t *testing.T) {
		t.Parallel()
		src, err := secretsource.NewFromConfig(secretsource.EnvConfig{Secret: "topsecret"})
		require.NoError(t, err)
		got, err := src.Provide(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("topsecret"), got)
	})

	t.Run("file wins", func(t *testing.T) {
		t.Parallel()
		src, err := secretsource.NewFromConfig(secretsource.EnvConfig{
			Secret:   "ignored",
			FilePath: writeSecret(t, "from-file\n"),
			TrimFile: true,
		})
		require.NoError(t, err)
		assert.IsType(t, &secretsource.File{}, src)
		got, err := src.Provide(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("from-file"), got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		src, err := secretsource.NewFromConfig(secretsource.EnvConfig{FilePath: filepath.Join(t.TempDir(), "x")})
		assert.ErrorIs(t, err, secretsource.ErrFileNotFound)
		assert.Nil(t, src)
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Parallel()
		_, err := secretsource.NewFromConfig(secretsource.EnvConfig{})
		assert.ErrorIs(t, err, secretsource.ErrMissingSource)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("TOKEN_SECRET_FILE", "")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	src, err := secretsource.NewFromEnv()
	require.NoError(t, err)
	got, err := src.Provide(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("env-secret"), got)
}

func TestNewFromEnv_FileKeptVerbatim(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")
	t.Setenv("TOKEN_SECRET_FILE", writeSecret(t, "topsecret\n"))
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	src, err := secretsource.NewFromEnv()
	require.NoError(t, err)
	got, err := src.Provide(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("topsecret\n"), got)
}
