package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request served by echo
func ZapEchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			txn := newrelic.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path += "?" + req.URL.RawQuery
			}

			l.LogHTTPRequest(txn, HTTPRequestLog{
				Method:     req.Method,
				Path:       path,
				ClientIP:   c.RealIP(),
				RequestID:  requestID,
				StatusCode: c.Response().Status,
				Latency:    latency,
				Err:        err,
			})
			return nil
		}
	}
}
