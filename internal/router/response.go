package router

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/ratelimit"
	"github.com/nusarithm/news-gateway/pkg/pagination"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool             `json:"success"`
	Data    any              `json:"data"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

func ok(data any) Response {
	return Response{Success: true, Data: data}
}

func okPaged(data any, meta *pagination.Meta) Response {
	return Response{Success: true, Data: data, Meta: meta}
}

// setRateHeaders attaches the rate-status headers carried by every
// successful response.
func setRateHeaders(c echo.Context, st ratelimit.Status, tier domain.Tier) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(st.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(st.Remaining))
	h.Set("X-RateLimit-Reset", st.ResetAt.UTC().Format(time.RFC3339))
	h.Set("X-Subscription-Tier", tier.Name())
}
