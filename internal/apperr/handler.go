package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nusarithm/news-gateway/internal/domain"
)

type errorBody struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newErrorBody(code int, message string) errorBody {
	return errorBody{Success: false, Error: errorDetail{Code: code, Message: message}}
}

// GlobalErrorHandler maps the error taxonomy onto the response envelope.
// Rate-limit rejections additionally carry the X-RateLimit-* headers so
// callers can schedule a retry.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, newErrorBody(http.StatusNotFound, nf.Message))
			return
		}

		var rl *RateLimitError
		if errors.As(err, &rl) {
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(rl.Limit))
			h.Set("X-RateLimit-Remaining", "0")
			h.Set("X-RateLimit-Reset", rl.ResetAt.UTC().Format(time.RFC3339))
			h.Set("X-Subscription-Tier", rl.Tier)
			msg := fmt.Sprintf(
				"Rate limit exceeded. Your %s plan allows %d requests per hour. Resets at %s.",
				rl.Tier, rl.Limit, rl.ResetAt.UTC().Format(time.RFC3339))
			tier := domain.TierFromLabel(rl.Tier)
			if next := tier.Next(); next != tier {
				msg += fmt.Sprintf(" Upgrade to the %s plan (%s) for higher limits.",
					next.Name(), next.PriceLabel())
			}
			_ = c.JSON(http.StatusTooManyRequests, newErrorBody(http.StatusTooManyRequests, msg))
			return
		}

		var be *BackendError
		if errors.As(err, &be) {
			slog.Error("Search backend failure", "error", be)
			_ = c.JSON(http.StatusInternalServerError,
				newErrorBody(http.StatusInternalServerError, "Service temporarily unavailable"))
			return
		}

		var ua *UnauthorizedError
		if errors.As(err, &ua) {
			_ = c.JSON(http.StatusForbidden, newErrorBody(http.StatusForbidden, ua.Message))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, newErrorBody(he.Code, fmt.Sprintf("%v", he.Message)))
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError,
			newErrorBody(http.StatusInternalServerError, "internal server error"))
	}
}
