package token

import (
	"context"
	"errors"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/sigtoken/pkg/codec"
	"github.com/dmitrymomot/sigtoken/pkg/logger"
)

// SecretSource provides the shared signing secret.
// It is consulted on every Issue and Verify call and never cached by Service.
type SecretSource interface {
	Provide(ctx context.Context) ([]byte, error)
}

// Service issues and verifies tokens carrying payloads of type T.
// It holds no mutable state and is safe for concurrent use as long as the
// SecretSource is.
type Service[T any] struct {
	source     SecretSource
	serializer Serializer
	log        *slog.Logger
}

// New creates a Service signing with secrets from source.
func New[T any](source SecretSource, opts ...Option) (*Service[T], error) {
	if source == nil {
		return nil, ErrMissingSecretSource
	}

	o := &options{
		serializer: JSONSerializer{},
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Service[T]{
		source:     source,
		serializer: o.serializer,
		log:        o.logger.With(logger.Component("token")),
	}, nil
}

// Issue serializes payload and returns the signed token
// "<header>.<payload>.<signature>". The result is deterministic for a given
// payload and secret.
func (s *Service[T]) Issue(ctx context.Context, payload T) (string, error) {
	data, err := s.serializer.Marshal(payload)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to serialize payload", logger.Operation("issue"), logger.Error(err))
		return "", errors.Join(ErrEncode, err)
	}

	p := Parts{
		Header:  HeaderSegment(),
		Payload: codec.EncodeSegment(data),
	}

	secret, err := s.secret(ctx, "issue")
	if err != nil {
		return "", err
	}

	p.Signature = Sign(secret, p.Header, p.Payload)
	return p.String(), nil
}

// Verify checks the token signature against the current secret and returns
// the decoded payload.
func (s *Service[T]) Verify(ctx context.Context, token string) (T, error) {
	var payload T
	if err := s.VerifyInto(ctx, token, &payload); err != nil {
		var zero T
		return zero, err
	}
	return payload, nil
}

// VerifyInto works like Verify but decodes the payload into dst, which must be
// a non-nil pointer. Any other dst fails with ErrNilDestination before the
// token is inspected.
func (s *Service[T]) VerifyInto(ctx context.Context, token string, dst any) error {
	if rv := reflect.ValueOf(dst); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNilDestination
	}

	p, err := Split(token)
	if err != nil {
		return s.reject(ctx, "format", err)
	}

	secret, err := s.secret(ctx, "verify")
	if err != nil {
		return err
	}

	if !signatureEqual(p.Signature, Sign(secret, p.Header, p.Payload)) {
		return s.reject(ctx, "signature", ErrSignature)
	}

	text, err := codec.DecodeText(p.Payload)
	if err != nil {
		return s.reject(ctx, "decode", errors.Join(ErrDecode, err))
	}

	if err := s.serializer.Unmarshal([]byte(text), dst); err != nil {
		if !errors.Is(err, ErrSchema) && !errors.Is(err, ErrDecode) {
			err = errors.Join(ErrDecode, err)
		}
		reason := "decode"
		if errors.Is(err, ErrSchema) {
			reason = "schema"
		}
		return s.reject(ctx, reason, err)
	}

	return nil
}

func (s *Service[T]) secret(ctx context.Context, op string) ([]byte, error) {
	secret, err := s.source.Provide(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "secret source unavailable", logger.Operation(op), logger.Error(err))
		if !errors.Is(err, ErrSourceUnavailable) {
			err = errors.Join(ErrSourceUnavailable, err)
		}
		return nil, err
	}
	return secret, nil
}

func (s *Service[T]) reject(ctx context.Context, reason string, err error) error {
	s.log.DebugContext(ctx, "token rejected", logger.Operation("verify"), logger.Reason(reason), logger.Error(err))
	return err
}
