package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/ratelimit"
	"github.com/nusarithm/news-gateway/internal/service"
	"github.com/nusarithm/news-gateway/pkg/pagination"
)

const apiVersion = "1.1.0"

// Request metadata headers set by the API marketplace proxy. Both are
// optional: absent tier resolves to Basic, absent user to "anonymous".
const (
	tierHeader = "X-RapidAPI-Subscription"
	userHeader = "X-RapidAPI-User"

	anonymousUser = "anonymous"
)

type NewsRouter struct {
	e       *echo.Echo
	svc     *service.NewsService
	limiter *ratelimit.Limiter
}

func NewNewsRouter(e *echo.Echo, svc *service.NewsService, limiter *ratelimit.Limiter) *NewsRouter {
	return &NewsRouter{e: e, svc: svc, limiter: limiter}
}

func (r *NewsRouter) Bind() {
	r.e.GET("/ping", r.healthHandler)

	api := r.e.Group("/api")
	api.GET("/health", r.healthHandler)
	api.GET("/news", r.searchHandler)
	api.GET("/news/sources", r.sourcesHandler)
	api.GET("/news/stats", r.statsHandler)
	api.GET("/news/trending", r.trendingHandler)
	api.GET("/news/:id", r.articleHandler)
}

func tierFrom(c echo.Context) domain.Tier {
	return domain.TierFromLabel(c.Request().Header.Get(tierHeader))
}

func userFrom(c echo.Context) string {
	if user := c.Request().Header.Get(userHeader); user != "" {
		return user
	}
	return anonymousUser
}

// checkRate resolves the caller's identity and charges the request against
// the tier quota. The returned status feeds the rate headers on success;
// on rejection the error already carries everything the 429 needs.
func (r *NewsRouter) checkRate(c echo.Context) (domain.Tier, ratelimit.Status, error) {
	tier := tierFrom(c)
	st, err := r.limiter.Check(userFrom(c), tier)
	return tier, st, err
}

func (r *NewsRouter) healthHandler(c echo.Context) error {
	status, err := r.svc.Health(c.Request().Context())
	if err != nil {
		status = "unavailable"
	}

	return c.JSON(http.StatusOK, ok(map[string]any{
		"status":        "ok",
		"version":       apiVersion,
		"elasticsearch": status,
	}))
}

func (r *NewsRouter) searchHandler(c echo.Context) error {
	tier, st, err := r.checkRate(c)
	if err != nil {
		return err
	}

	var params domain.SearchParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search parameters")
	}

	page, err := r.svc.Search(c.Request().Context(), &params, tier)
	if err != nil {
		return err
	}

	setRateHeaders(c, st, tier)
	meta := pagination.NewMeta(page.Page, page.Size, page.Total)
	return c.JSON(http.StatusOK, okPaged(page.Articles, meta))
}

func (r *NewsRouter) articleHandler(c echo.Context) error {
	tier, st, err := r.checkRate(c)
	if err != nil {
		return err
	}

	article, err := r.svc.GetByID(c.Request().Context(), c.Param("id"), tier)
	if err != nil {
		return err
	}

	setRateHeaders(c, st, tier)
	return c.JSON(http.StatusOK, ok(article))
}

func (r *NewsRouter) sourcesHandler(c echo.Context) error {
	tier, st, err := r.checkRate(c)
	if err != nil {
		return err
	}

	sources, err := r.svc.Sources(c.Request().Context())
	if err != nil {
		return err
	}

	setRateHeaders(c, st, tier)
	return c.JSON(http.StatusOK, ok(sources))
}

func (r *NewsRouter) statsHandler(c echo.Context) error {
	tier, st, err := r.checkRate(c)
	if err != nil {
		return err
	}

	stats, err := r.svc.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	setRateHeaders(c, st, tier)
	return c.JSON(http.StatusOK, ok(stats))
}

func (r *NewsRouter) trendingHandler(c echo.Context) error {
	tier, st, err := r.checkRate(c)
	if err != nil {
		return err
	}

	items, err := r.svc.Trending(c.Request().Context())
	if err != nil {
		return err
	}

	setRateHeaders(c, st, tier)
	return c.JSON(http.StatusOK, ok(items))
}
