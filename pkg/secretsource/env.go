package secretsource

import (
	"errors"

	"github.com/dmitrymomot/sigtoken/pkg/config"
)

// EnvConfig selects where the signing secret comes from.
// FilePath takes precedence over Secret when both are set.
type EnvConfig struct {
	Secret   string `env:"TOKEN_SECRET"`
	FilePath string `env:"TOKEN_SECRET_FILE"`
	TrimFile bool   `env:"TOKEN_SECRET_FILE_TRIM"` // off: the file bytes are the secret, newline included
}

// NewFromConfig builds a File source when cfg.FilePath is set and a Static
// source otherwise.
func NewFromConfig(cfg EnvConfig) (Source, error) {
	switch {
	case cfg.FilePath != "":
		var opts []FileOption
		if cfg.TrimFile {
			opts = append(opts, WithTrimSpace())
		}
		f, err := NewFile(cfg.FilePath, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	case cfg.Secret != "":
		s, err := NewStaticString(cfg.Secret)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, ErrMissingSource
	}
}

// NewFromEnv loads EnvConfig from the environment and builds the matching source.
func NewFromEnv() (Source, error) {
	var cfg EnvConfig
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return NewFromConfig(cfg)
}
