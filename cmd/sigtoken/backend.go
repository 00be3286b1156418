package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sigtoken/pkg/config"
	"github.com/dmitrymomot/sigtoken/pkg/logger"
	sigmongo "github.com/dmitrymomot/sigtoken/pkg/mongo"
	"github.com/dmitrymomot/sigtoken/pkg/pg"
	sigredis "github.com/dmitrymomot/sigtoken/pkg/redis"
	"github.com/dmitrymomot/sigtoken/pkg/secretsource"
)

const (
	backendEnv      = "env"
	backendRedis    = "redis"
	backendPostgres = "postgres"
	backendMongo    = "mongo"
	backendS3       = "s3"

	mongoCollection = "token_secrets"
)

var errUnknownBackend = errors.New("unknown secret backend")

// backendConfig selects the store the signing secret is read from.
type backendConfig struct {
	// Backend is one of env, redis, postgres, mongo or s3.
	Backend string `env:"TOKEN_SECRET_BACKEND" envDefault:"env"`

	// Name is the key, row or document name in a store.
	Name string `env:"TOKEN_SECRET_NAME" envDefault:"signing"`

	// MasterKey is base64; when set the stored value is sealed.
	MasterKey string `env:"TOKEN_SECRET_MASTER_KEY"`
	Label     string `env:"TOKEN_SECRET_LABEL" envDefault:"token-signing"`
}

// backend is an opened secret source plus whatever must be released with it.
type backend struct {
	source secretsource.Source
	check  func(context.Context) error
	close  func()
}

func openBackend(ctx context.Context, cfg backendConfig, log *slog.Logger) (*backend, error) {
	b, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.MasterKey == "" {
		return b, nil
	}

	key, err := decodeMasterKey(cfg.MasterKey)
	if err != nil {
		b.close()
		return nil, err
	}
	enc, err := secretsource.NewEncrypted(b.source, key, cfg.Label)
	if err != nil {
		b.close()
		return nil, err
	}
	b.source = enc
	return b, nil
}

func openStore(ctx context.Context, cfg backendConfig, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Source(cfg.Backend))
	noop := func() {}

	switch cfg.Backend {
	case backendEnv, "":
		src, err := secretsource.NewFromEnv()
		if err != nil {
			return nil, err
		}
		return &backend{source: src, close: noop}, nil

	case backendRedis:
		var rc sigredis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := sigredis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		src, err := secretsource.NewRedis(client, cfg.Name)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return &backend{
			source: src,
			check:  sigredis.Healthcheck(client),
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close redis client", logger.Error(err))
				}
			},
		}, nil

	case backendPostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		src, err := secretsource.NewPostgres(pool, cfg.Name)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &backend{source: src, check: pg.Healthcheck(pool), close: pool.Close}, nil

	case backendMongo:
		var mc sigmongo.Config
		if err := config.Load(&mc); err != nil {
			return nil, err
		}
		client, err := sigmongo.New(ctx, mc)
		if err != nil {
			return nil, err
		}
		src, err := secretsource.NewMongo(client.Database(mc.Database).Collection(mongoCollection), cfg.Name)
		if err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, err
		}
		return &backend{
			source: src,
			check:  sigmongo.Healthcheck(client),
			close: func() {
				if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
					log.Error("failed to disconnect mongo client", logger.Error(err))
				}
			},
		}, nil

	case backendS3:
		var sc secretsource.S3Config
		if err := config.Load(&sc); err != nil {
			return nil, err
		}
		src, err := secretsource.NewS3FromConfig(ctx, sc)
		if err != nil {
			return nil, err
		}
		return &backend{source: src, close: noop}, nil
	}

	return nil, fmt.Errorf("%w: %q", errUnknownBackend, cfg.Backend)
}

func decodeMasterKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("TOKEN_SECRET_MASTER_KEY is not valid base64: %w", err)
	}
	return key, nil
}
