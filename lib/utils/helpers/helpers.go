package helpers

import (
	"context"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// DefaultIfEmpty def для пустой или состоящей из пробелов строки
func DefaultIfEmpty(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
