package secretsource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	t.Run("returns copy", func(t *testing.T) {
		t.Parallel()
		raw := []byte("topsecret")
		src, err := secretsource.NewStatic(raw)
		require.NoError(t, err)

		raw[0] = 'X'
		got, err := src.Provide(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("topsecret"), got)

		got[0] = 'Y'
		again, err := src.Provide(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("topsecret"), again)
	})

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		_, err := secretsource.NewStaticString("")
		assert.ErrorIs(t, err, secretsource.ErrEmptySecret)
		assert.ErrorIs(t, err, secretsource.ErrUnavailable)
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	var src secretsource.Source = secretsource.Func(func(context.Context) ([]byte, error) {
		return nil, boom
	})
	_, err := src.Provide(context.Background())
	assert.ErrorIs(t, err, boom)
}
