package entity

import "context"

// Logger is the contextual logger shared by the app, the api client and the mock service.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
