package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/utils"
)

// PanicRecoveryWithZapMiddleware recovers from handler panics, logs them with their
// stack and answers 500 if nothing was written yet
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryWithZapMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	req := c.Request()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = req.Header.Get(echo.HeaderXRequestID)
	}

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
		txn.AddAttribute("panic.recovered", true)
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return nil
	}
	return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "An unexpected error occurred while processing your request")
}
