package cli

import (
	"context"

	"github.com/richezza/rmv/internal/app"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// AppKey carries a prebuilt *app.App into command execution
const AppKey ContextKey = "app"

// WithApp returns a context whose commands run against a instead of opening
// the configured storage
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// GetCLIFromContext returns a CLI over the app carried in ctx, or builds one
// from the config when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
