// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing. Each configuration type is
// parsed once and cached for the lifetime of the process, so packages can call
// Load from constructors without paying the parsing cost twice.
//
// # Usage
//
//	type SecretConfig struct {
//	    Secret   string `env:"TOKEN_SECRET"`
//	    FilePath string `env:"TOKEN_SECRET_FILE"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg SecretConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad panics instead of returning an error, for configuration without
// which the process should not start.
//
// # Testing Helpers
//
// ResetCache clears every cached value and Reload re-parses a single type
// after the environment changed (for example after t.Setenv).
package config
