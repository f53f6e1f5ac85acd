package supabasetest

import "context"

type bodyKey struct{}

func withBody(ctx context.Context, b map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, b)
}

func bodyFrom(ctx context.Context) map[string]any {
	b, _ := ctx.Value(bodyKey{}).(map[string]any)
	return b
}
