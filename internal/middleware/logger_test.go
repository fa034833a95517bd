package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger_AttachesCallerIdentity(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.Use(Logger())
	e.GET("/api/news", func(c echo.Context) error {
		c.Response().Header().Set("X-RateLimit-Remaining", "4")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set(logTierHeader, "PRO")
	req.Header.Set(logUserHeader, "user-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "REQUEST")
	assert.Contains(t, out, "tier=pro")
	assert.Contains(t, out, "user=user-42")
	assert.Contains(t, out, "quota_remaining=4")
}

func TestLogger_DefaultsIdentityWhenHeadersAbsent(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.Use(Logger())
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "tier=basic")
	assert.Contains(t, out, "user=anonymous")
	assert.NotContains(t, out, "quota_remaining")
}
