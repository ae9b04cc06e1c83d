package breakpoint

import "context"

type ctxKey struct{}

// Provide returns a child context carrying o merged over Defaults().
// Consumers below ctx see the new Config; siblings and ancestors are unaffected.
func Provide(ctx context.Context, o Options) context.Context {
	return ProvideConfig(ctx, o.Resolve())
}

// ProvideConfig returns a child context carrying cfg as-is.
func ProvideConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the Config supplied by the nearest enclosing Provide.
// It returns ErrNoProvider when ctx has none.
func FromContext(ctx context.Context) (Config, error) {
	if ctx != nil {
		if cfg, ok := ctx.Value(ctxKey{}).(Config); ok {
			return cfg, nil
		}
	}
	return Config{}, ErrNoProvider
}
