// Package token issues and verifies compact signed tokens carrying a typed payload.
//
// Token format:
//
//	base64(header) "." base64(payload) "." base64(sha256(headerSeg + payloadSeg + secret))
//
// All segments use the standard base64 alphabet with padding stripped (see
// package codec). The header is always {"alg":"HS256","typ":"JWT"}. The
// signature is a SHA-256 digest of the two encoded segments followed by the
// secret; it is not HMAC, and tokens from other implementations only verify
// when they use the same construction.
//
// # Usage
//
//	type Session struct {
//	    ID string `json:"id"`
//	}
//
//	src, err := secretsource.NewFile("/run/secrets/token")
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, secretsource.ErrFileNotFound)
//	}
//
//	svc, err := token.New[Session](src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := svc.Issue(ctx, Session{ID: "42"})
//	s, err := svc.Verify(ctx, tok)
//
// The secret is fetched from the SecretSource on every call, so rotating the
// secret takes effect immediately. Expiry, revocation and key versioning are
// left to the caller; a payload may carry a timestamp but Verify does not read it.
//
// # Errors
//
// Verify returns ErrFormat, ErrSignature, ErrDecode or ErrSchema for bad
// tokens and ErrSourceUnavailable when no secret can be obtained. Use
// IsInvalidToken when answering clients so responses do not reveal which check
// failed.
//
// # HTTP
//
// Middleware extracts a token (Bearer header by default), verifies it and
// stores the payload in the request context:
//
//	r.Use(token.Middleware(svc))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    s, ok := token.GetPayload[Session](r.Context())
//	}
package token
