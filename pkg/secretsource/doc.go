// Package secretsource provides implementations of the signing secret
// provider consumed by package token.
//
// Every source answers Provide(ctx) with the current secret bytes. Failures
// always satisfy errors.Is(err, ErrUnavailable), so callers can tell "the
// secret could not be obtained" apart from "the token is invalid".
//
// Available sources:
//
//   - Static holds bytes in memory.
//   - File reads a file once at construction and fails fast when it is missing.
//   - Redis, Postgres, Mongo and S3 read from a backing store on every call.
//   - Encrypted unwraps a secret sealed with package secrets.
//
// NewFromEnv picks Static or File from TOKEN_SECRET / TOKEN_SECRET_FILE:
//
//	src, err := secretsource.NewFromEnv()
//	if err != nil {
//		return err
//	}
//	svc, err := token.New[Claims](src)
//
// Sources other than File do not cache. Wrap them yourself if a store round
// trip per call is too expensive.
package secretsource
