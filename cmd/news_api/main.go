package main

import (
	"log/slog"
	"os"

	"github.com/nusarithm/news-gateway/internal/config"
	"github.com/nusarithm/news-gateway/internal/ratelimit"
	"github.com/nusarithm/news-gateway/internal/router"
	"github.com/nusarithm/news-gateway/internal/server"
	"github.com/nusarithm/news-gateway/internal/service"
	"github.com/nusarithm/news-gateway/internal/storage/es"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	sCfg := &server.Config{
		Port:        cfg.Port,
		ProxySecret: cfg.ProxySecret,
	}
	if err := sCfg.Validate(); err != nil {
		slog.Error("Invalid server configuration", "error", err)
		os.Exit(1)
	}

	reader, err := es.NewReader(cfg.ES)
	if err != nil {
		slog.Error("Failed to create search reader", "error", err)
		os.Exit(1)
	}

	svc := service.NewNewsService(reader)
	limiter := ratelimit.New(cfg.RateLimits)

	slog.Info("Starting news gateway",
		"port", cfg.Port,
		"index", cfg.ES.IndexPattern)
	slog.Info("Hourly rate limits",
		"basic", cfg.RateLimits.Basic,
		"pro", cfg.RateLimits.Pro,
		"ultra", cfg.RateLimits.Ultra,
		"mega", cfg.RateLimits.Mega)

	s := server.New(sCfg)

	newsRouter := router.NewNewsRouter(s.Echo, svc, limiter)
	newsRouter.Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
