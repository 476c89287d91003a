package bffsdk

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
)

// log returns a logger scoped to the request ID if present in the context.
// Services that embed the SDK behind chi middleware get correlated logs for
// free; everyone else gets the default logger.
func log(ctx context.Context) *slog.Logger {
	if id := ctx.Value(middleware.RequestIDKey); id != nil {
		return slog.Default().With("trace", id)
	}
	return slog.Default()
}
