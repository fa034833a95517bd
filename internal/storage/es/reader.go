package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/nusarithm/news-gateway/internal/apperr"
	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/storage"
)

// requestTimeout bounds every backend call. There is no retry; a timeout
// surfaces as a BackendError.
const requestTimeout = 30 * time.Second

// Reader implements storage.Reader against an Elasticsearch index pattern.
type Reader struct {
	client       *elasticsearch.Client
	indexPattern string
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:       client,
		indexPattern: config.IndexPattern,
	}, nil
}

// execute posts a query document to the search endpoint and decodes the
// response envelope. Every transport or document-level failure collapses
// into a single BackendError; callers never branch on backend detail.
func (r *Reader) execute(ctx context.Context, body map[string]any) (*searchEnvelope, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperr.NewBackend("failed to encode query", err)
	}

	slog.Debug("Executing search", "index", r.indexPattern, "body", string(payload))

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.indexPattern),
		r.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, apperr.NewBackend("search request failed", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperr.NewBackend("failed to read search response", err)
	}

	var env searchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperr.NewBackend("failed to parse search response", err)
	}

	if res.IsError() || env.Error != nil {
		slog.Error("Search backend returned error",
			"status", res.StatusCode,
			"error", string(env.Error))
		return nil, apperr.NewBackend(fmt.Sprintf("search returned status %d", res.StatusCode), nil)
	}

	return &env, nil
}

func (r *Reader) Search(ctx context.Context, params *domain.SearchParams, maxSize int) (*storage.SearchResult, error) {
	env, err := r.execute(ctx, buildSearchBody(params, maxSize))
	if err != nil {
		return nil, err
	}

	articles := parseHits(env)
	total := parseTotal(env)

	slog.Info("Search results fetched",
		"query", params.Query,
		"total", total,
		"returned", len(articles))

	return &storage.SearchResult{Articles: articles, Total: total}, nil
}

func (r *Reader) FindByID(ctx context.Context, id string) (*domain.NewsArticle, error) {
	env, err := r.execute(ctx, buildGetByIDBody(id))
	if err != nil {
		return nil, err
	}

	articles := parseHits(env)
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

func (r *Reader) Sources(ctx context.Context) ([]domain.SourceInfo, error) {
	env, err := r.execute(ctx, buildSourcesBody())
	if err != nil {
		return nil, err
	}
	return parseBuckets(env.Aggregations["sources"]), nil
}

func (r *Reader) Stats(ctx context.Context) (*domain.StatsData, error) {
	env, err := r.execute(ctx, buildStatsBody())
	if err != nil {
		return nil, err
	}

	return &domain.StatsData{
		TotalArticles: parseTotal(env),
		Sources:       parseBuckets(env.Aggregations["sources"]),
		DateRange: domain.DateRange{
			Earliest: env.Aggregations["date_min"].ValueAsString,
			Latest:   env.Aggregations["date_max"].ValueAsString,
		},
	}, nil
}

func (r *Reader) Trending(ctx context.Context) ([]domain.TrendingItem, error) {
	env, err := r.execute(ctx, buildTrendingBody())
	if err != nil {
		return nil, err
	}
	return parseTrending(env.Aggregations["entities"], env.Aggregations["tags"]), nil
}

func (r *Reader) Health(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := r.client.Cluster.Health(r.client.Cluster.Health.WithContext(ctx))
	if err != nil {
		return "", apperr.NewBackend("health check failed", err)
	}
	defer res.Body.Close()

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(res.Body).Decode(&health); err != nil {
		return "", apperr.NewBackend("failed to parse health response", err)
	}

	if health.Status == "" {
		return "unknown", nil
	}
	return health.Status, nil
}

// Compile-time interface assertion
var _ storage.Reader = (*Reader)(nil)
