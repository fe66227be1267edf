// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	deliverycontext "storefront/internal/delivery/context"
)

// inFlight counts running actions so that overlapping calls keep the
// loading flag raised until the last one finishes.
type inFlight struct {
	n atomic.Int32
}

// begin raises the flag and returns the func that lowers it.
func (f *inFlight) begin() func() {
	f.n.Add(1)

	return func() { f.n.Add(-1) }
}

func (f *inFlight) active() bool {
	return f.n.Load() > 0
}

// startAction tags ctx with a fresh request id unless it already carries a
// request-scoped logger, and returns the logger to use for the action.
func startAction(ctx context.Context, fallback *slog.Logger) (context.Context, *slog.Logger) {
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		return ctx, logger
	}

	return deliverycontext.WithNewRequest(ctx, fallback)
}
