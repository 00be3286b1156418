package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// Returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the operation name, e.g. "issue" or "verify".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// Source records the kind of secret source, e.g. "file" or "redis".
func Source(kind string) slog.Attr {
	return slog.String("secret_source", kind)
}

// Reason records a short machine-readable failure reason.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Size records a byte length under the given key.
// Token and payload sizes are logged instead of their contents.
func Size(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// RequestID records the request identifier under the key "request_id".
// Returns an empty Attr for nil.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}
