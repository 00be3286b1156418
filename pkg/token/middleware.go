package token

import (
	"errors"
	"net/http"
	"strings"
)

// ErrMissingToken is returned by extractors when the request carries no token.
var ErrMissingToken = errors.New("token: missing token")

// ExtractorFunc pulls a token out of an HTTP request.
type ExtractorFunc func(r *http.Request) (string, error)

// SkipFunc reports whether a request bypasses verification.
type SkipFunc func(r *http.Request) bool

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures Middleware behavior.
type MiddlewareConfig[T any] struct {
	Service      *Service[T]
	Extractor    ExtractorFunc    // defaults to BearerTokenExtractor
	Skip         SkipFunc         // optional
	ErrorHandler ErrorHandlerFunc // defaults to DefaultErrorHandler
}

// Middleware verifies Bearer tokens and stores the payload in the request context.
func Middleware[T any](svc *Service[T]) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig[T]{Service: svc})
}

// MiddlewareWithConfig creates the verification middleware from cfg.
func MiddlewareWithConfig[T any](cfg MiddlewareConfig[T]) func(next http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("token: middleware requires a service")
	}
	if cfg.Extractor == nil {
		cfg.Extractor = BearerTokenExtractor
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = DefaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := cfg.Extractor(r)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			payload, err := cfg.Service.Verify(r.Context(), raw)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			ctx := SetToken(r.Context(), raw)
			ctx = SetPayload(ctx, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DefaultErrorHandler answers 503 when the secret is unavailable and a
// uniform 401 for every other failure, so clients cannot tell which check failed.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrSourceUnavailable) {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "invalid token", http.StatusUnauthorized)
}

// BearerTokenExtractor reads "Authorization: Bearer <token>".
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrFormat
	}

	return token, nil
}

// CookieTokenExtractor reads the token from the named cookie.
func CookieTokenExtractor(cookieName string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// QueryTokenExtractor reads the token from a URL query parameter.
// Segments use the standard base64 alphabet, so clients must URL-escape the
// token ('+' would otherwise decode as a space).
func QueryTokenExtractor(paramName string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(headerName string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
