package secretsource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.Called(ctx, sql, args).Get(0).(pgx.Row)
}

// row is a pgx.Row returning a fixed value or error.
type row struct {
	value []byte
	err   error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.value
	return nil
}

func TestPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     row
		want    []byte
		wantErr error
	}{
		{"found", row{value: []byte("topsecret")}, []byte("topsecret"), nil},
		{"no rows", row{err: pgx.ErrNoRows}, nil, secretsource.ErrSecretNotFound},
		{"empty value", row{value: []byte{}}, nil, secretsource.ErrEmptySecret},
		{"connection error", row{err: errors.New("conn refused")}, nil, secretsource.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := &mockQuerier{}
			q.On("QueryRow", mock.Anything, mock.MatchedBy(func(sql string) bool {
				return sql == "SELECT value FROM token_secrets WHERE name = $1"
			}), []any{"signing"}).Return(tt.row).Once()

			src, err := secretsource.NewPostgres(q, "signing")
			require.NoError(t, err)

			got, err := src.Provide(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			q.AssertExpectations(t)
		})
	}

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		_, err := secretsource.NewPostgres(&mockQuerier{}, "")
		assert.ErrorIs(t, err, secretsource.ErrInvalidConfig)
	})
}
