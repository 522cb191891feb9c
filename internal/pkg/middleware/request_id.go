package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/requestcontext"
)

// RequestIDMiddleware keeps the inbound X-Request-ID or generates one, echoes it on the
// response and stores it in the request context for outbound calls and logs
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.SetRequest(req.WithContext(requestcontext.WithRequestID(req.Context(), requestID)))

			return next(c)
		}
	}
}
