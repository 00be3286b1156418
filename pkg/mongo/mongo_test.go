package mongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/sigtoken/pkg/mongo"
)

type pingFunc func(ctx context.Context, rp *readpref.ReadPref) error

func (f pingFunc) Ping(ctx context.Context, rp *readpref.ReadPref) error { return f(ctx, rp) }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ok := mongo.Healthcheck(pingFunc(func(context.Context, *readpref.ReadPref) error { return nil }))
	assert.NoError(t, ok(context.Background()))

	down := mongo.Healthcheck(pingFunc(func(context.Context, *readpref.ReadPref) error {
		return errors.New("no reachable servers")
	}))
	assert.ErrorIs(t, down(context.Background()), mongo.ErrHealthcheckFailed)
}

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()
	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}
