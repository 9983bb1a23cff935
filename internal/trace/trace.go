package trace

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const key ctxKey = 1
const Header = "Trace-Id"

func NewID() string {
	return uuid.NewString()
}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key, id)
}

func From(ctx context.Context) string {
	if v := ctx.Value(key); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
