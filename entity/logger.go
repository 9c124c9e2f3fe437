package entity

import "context"

// Logger specifies a contextual, structured logger.
// Todo: sabot satisfies this, keep it that way
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
