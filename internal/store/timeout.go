package store

import (
	"context"
	"time"
)

// WithTimeout bounds a single repository call; d <= 0 leaves ctx unbounded.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Nullable maps the empty string to SQL NULL.
func Nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
