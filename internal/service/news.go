// Package service composes query building, result mapping, and content
// gating into the tier-aware operations exposed by the gateway.
package service

import (
	"context"

	"github.com/nusarithm/news-gateway/internal/apperr"
	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/storage"
)

// NewsService runs every read operation against the backend through the
// storage port and applies tier gating to the results.
type NewsService struct {
	reader storage.Reader
}

func NewNewsService(reader storage.Reader) *NewsService {
	return &NewsService{reader: reader}
}

// SearchPage is one gated result page plus the pagination facts the
// boundary needs for the response meta.
type SearchPage struct {
	Articles []domain.NewsArticle
	Total    int64
	Page     int
	Size     int
}

// Search runs a tier-clamped search. The page size is bounded by the tier
// cap before the query is built so the offset window sent to the backend
// is already correct.
func (s *NewsService) Search(ctx context.Context, params *domain.SearchParams, tier domain.Tier) (*SearchPage, error) {
	maxSize := tier.MaxPageSize()

	res, err := s.reader.Search(ctx, params, maxSize)
	if err != nil {
		return nil, err
	}

	return &SearchPage{
		Articles: GateArticles(res.Articles, tier),
		Total:    res.Total,
		Page:     params.EffectivePage(),
		Size:     params.EffectiveSize(maxSize),
	}, nil
}

// GetByID fetches a single article with tier-appropriate content.
func (s *NewsService) GetByID(ctx context.Context, id string, tier domain.Tier) (*domain.NewsArticle, error) {
	article, err := s.reader.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NewNotFound("Article '%s' not found", id)
	}

	gated := GateArticle(*article, tier)
	return &gated, nil
}

// Sources lists all news sources with document counts.
func (s *NewsService) Sources(ctx context.Context) ([]domain.SourceInfo, error) {
	return s.reader.Sources(ctx)
}

// Stats returns dataset statistics.
func (s *NewsService) Stats(ctx context.Context) (*domain.StatsData, error) {
	return s.reader.Stats(ctx)
}

// Trending returns trending entities and tags.
func (s *NewsService) Trending(ctx context.Context) ([]domain.TrendingItem, error) {
	return s.reader.Trending(ctx)
}

// Health reports the backend cluster status.
func (s *NewsService) Health(ctx context.Context) (string, error) {
	return s.reader.Health(ctx)
}
