package secretsource

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const postgresQuery = `SELECT value FROM token_secrets WHERE name = $1`

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres reads the secret row named name from the token_secrets table
// (see pg.Migrate) on every call.
type Postgres struct {
	db   Querier
	name string
}

// NewPostgres creates a source reading the row called name.
func NewPostgres(db Querier, name string) (*Postgres, error) {
	if db == nil || name == "" {
		return nil, ErrInvalidConfig
	}
	return &Postgres{db: db, name: name}, nil
}

func (p *Postgres) Provide(ctx context.Context) ([]byte, error) {
	var value []byte
	if err := p.db.QueryRow(ctx, postgresQuery, p.name).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSecretNotFound
		}
		return nil, errors.Join(ErrUnavailable, err)
	}
	if len(value) == 0 {
		return nil, ErrEmptySecret
	}
	return value, nil
}
