package secretsource

import "context"

// Source provides the current signing secret on demand.
// Implementations must be safe for concurrent use.
type Source interface {
	Provide(ctx context.Context) ([]byte, error)
}

// Func adapts a plain function to the Source interface.
type Func func(ctx context.Context) ([]byte, error)

// Provide calls f.
func (f Func) Provide(ctx context.Context) ([]byte, error) {
	return f(ctx)
}
