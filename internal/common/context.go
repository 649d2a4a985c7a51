package common

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// ContextWithDefaultTimeout bounds a single vendor CLI invocation. Ten
// seconds is enough for the CLI to answer, and short enough that a wedged
// invocation doesn't hang the terminal.
func ContextWithDefaultTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// ContextWithShutdown returns a context that is cancelled when a SIGINT or
// SIGTERM is received, so long-running commands stop cleanly on ctrl-C.
func ContextWithShutdown() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}
