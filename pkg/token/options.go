package token

import "log/slog"

// Option configures a Service.
type Option func(*options)

type options struct {
	serializer Serializer
	logger     *slog.Logger
}

// WithSerializer replaces the default JSONSerializer.
func WithSerializer(s Serializer) Option {
	return func(o *options) {
		if s != nil {
			o.serializer = s
		}
	}
}

// WithStrictSchema rejects payloads carrying fields unknown to the target type.
func WithStrictSchema() Option {
	return func(o *options) {
		o.serializer = JSONSerializer{Strict: true}
	}
}

// WithLogger sets the logger used to report issue and verify failures.
// Tokens and secrets are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
