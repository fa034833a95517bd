package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nusarithm/news-gateway/internal/apperr"
)

const proxySecretHeader = "X-RapidAPI-Proxy-Secret"

// placeholderSecret is the value shipped in .env.example; treating it as
// unset keeps local setups from locking themselves out.
const placeholderSecret = "your-rapidapi-proxy-secret-here"

// ProxyAuth validates that requests arrive through the API marketplace
// proxy by checking its shared secret. Health endpoints stay open, and an
// empty or placeholder secret disables the check entirely (dev mode).
func ProxyAuth(secret string) echo.MiddlewareFunc {
	devMode := secret == "" || secret == placeholderSecret

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if devMode {
				return next(c)
			}

			path := c.Request().URL.Path
			if path == "/api/health" || path == "/ping" {
				return next(c)
			}

			if c.Request().Header.Get(proxySecretHeader) != secret {
				slog.Warn("Rejected request with invalid proxy secret", "path", path)
				return apperr.NewUnauthorized("Forbidden: Invalid API proxy secret")
			}

			return next(c)
		}
	}
}
