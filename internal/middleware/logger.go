package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nusarithm/news-gateway/internal/domain"
)

// Proxy identity headers, read here only for log attribution. The router
// owns the authoritative resolution; the values logged follow the same
// defaults (basic tier, anonymous user).
const (
	logTierHeader = "X-RapidAPI-Subscription"
	logUserHeader = "X-RapidAPI-User"
)

// Logger emits one line per request with the caller identity attached:
// the resolved subscription tier, the user behind the proxy, and the quota
// left after the rate check when the handler attached rate headers.
func Logger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogLatency:  true,
		LogURI:      true,
		LogMethod:   true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("tier", domain.TierFromLabel(c.Request().Header.Get(logTierHeader)).Name()),
				slog.String("user", logUser(c)),
			}
			if remaining := c.Response().Header().Get("X-RateLimit-Remaining"); remaining != "" {
				attrs = append(attrs, slog.String("quota_remaining", remaining))
			}

			if v.Error == nil {
				slog.LogAttrs(context.Background(), slog.LevelInfo, "REQUEST", attrs...)
			} else {
				attrs = append(attrs, slog.String("err", v.Error.Error()))
				slog.LogAttrs(context.Background(), slog.LevelError, "REQUEST_ERROR", attrs...)
			}
			return nil
		},
	})
}

func logUser(c echo.Context) string {
	if user := c.Request().Header.Get(logUserHeader); user != "" {
		return user
	}
	return "anonymous"
}
