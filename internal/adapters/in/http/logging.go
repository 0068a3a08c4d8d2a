package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger emits one structured log line per request. The level follows
// the response status.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("query", req.URL.RawQuery),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
				zap.Int64("body_size", res.Size),
			}
			if rid := res.Header().Get(echo.HeaderXRequestID); rid != "" {
				fields = append(fields, zap.String("request_id", rid))
			}

			switch {
			case res.Status >= 500:
				logger.Error("http_request", fields...)
			case res.Status >= 400:
				logger.Warn("http_request", fields...)
			default:
				logger.Info("http_request", fields...)
			}
			return nil
		}
	}
}
