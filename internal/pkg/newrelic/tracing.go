package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext returns the transaction started by the nrecho middleware
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext returns the transaction carried by ctx, or nil
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// Middleware returns the nrecho middleware, or a pass-through when APM is disabled
func Middleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// WithSegment runs fn inside a segment of the transaction in ctx, if any
func WithSegment[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// TraceHandler names the transaction after the handler and reports its error
func TraceHandler(name string, h echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := FromEchoContext(c)
		if txn != nil {
			txn.SetName(name)
		}
		err := h(c)
		if err != nil && txn != nil {
			txn.NoticeError(err)
		}
		return err
	}
}
