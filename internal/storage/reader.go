package storage

import (
	"context"

	"github.com/nusarithm/news-gateway/internal/domain"
)

// SearchResult carries one page of articles plus the backend-reported total
// match count, which may exceed the number of parsed items.
type SearchResult struct {
	Articles []domain.NewsArticle
	Total    int64
}

// Reader is the read-only port onto the search backend. Implementations own
// query construction and response mapping; callers never see raw backend
// documents or errors.
type Reader interface {
	// Search runs a filtered full-text query. maxSize caps the page size
	// before the request is built so the offset window sent to the backend
	// is already tier-bounded.
	Search(ctx context.Context, params *domain.SearchParams, maxSize int) (*SearchResult, error)

	// FindByID fetches a single document. Returns (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*domain.NewsArticle, error)

	// Sources aggregates all news sources with document counts.
	Sources(ctx context.Context) ([]domain.SourceInfo, error)

	// Stats aggregates overall dataset statistics.
	Stats(ctx context.Context) (*domain.StatsData, error)

	// Trending aggregates recently trending entities and tags.
	Trending(ctx context.Context) ([]domain.TrendingItem, error)

	// Health returns the backend cluster status string.
	Health(ctx context.Context) (string, error)
}
