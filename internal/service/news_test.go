package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusarithm/news-gateway/internal/apperr"
	"github.com/nusarithm/news-gateway/internal/domain"
	"github.com/nusarithm/news-gateway/internal/storage"
)

// stubReader records the arguments of the last call and returns canned data.
type stubReader struct {
	lastParams  *domain.SearchParams
	lastMaxSize int
	lastID      string

	searchResult *storage.SearchResult
	article      *domain.NewsArticle
	err          error
}

func (s *stubReader) Search(_ context.Context, params *domain.SearchParams, maxSize int) (*storage.SearchResult, error) {
	s.lastParams = params
	s.lastMaxSize = maxSize
	if s.err != nil {
		return nil, s.err
	}
	return s.searchResult, nil
}

func (s *stubReader) FindByID(_ context.Context, id string) (*domain.NewsArticle, error) {
	s.lastID = id
	return s.article, s.err
}

func (s *stubReader) Sources(context.Context) ([]domain.SourceInfo, error) {
	return []domain.SourceInfo{{Name: "kompas", DocCount: 10}}, s.err
}

func (s *stubReader) Stats(context.Context) (*domain.StatsData, error) {
	return &domain.StatsData{TotalArticles: 10}, s.err
}

func (s *stubReader) Trending(context.Context) ([]domain.TrendingItem, error) {
	return []domain.TrendingItem{{Keyword: "x", Category: "tag", Count: 1}}, s.err
}

func (s *stubReader) Health(context.Context) (string, error) {
	return "green", s.err
}

func TestSearch_ClampsSizeByTierBeforeQuerying(t *testing.T) {
	reader := &stubReader{searchResult: &storage.SearchResult{Total: 42}}
	svc := NewNewsService(reader)

	params := &domain.SearchParams{Page: 2, Size: 999}
	page, err := svc.Search(context.Background(), params, domain.TierBasic)
	require.NoError(t, err)

	// The tier cap reaches the reader so the backend sees size 10, offset 10.
	assert.Equal(t, 10, reader.lastMaxSize)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.EqualValues(t, 42, page.Total)
}

func TestSearch_GatesResultsForTier(t *testing.T) {
	long := strings.Repeat("a", 300)
	reader := &stubReader{searchResult: &storage.SearchResult{
		Articles: []domain.NewsArticle{
			{ID: "a1", Content: &long, Annotate: &domain.Annotation{
				Entities: []domain.EntityData{{Word: strPtr("Jakarta")}},
			}},
		},
		Total: 1,
	}}
	svc := NewNewsService(reader)

	page, err := svc.Search(context.Background(), &domain.SearchParams{}, domain.TierBasic)
	require.NoError(t, err)
	require.Len(t, page.Articles, 1)

	gated := page.Articles[0]
	assert.Len(t, []rune(*gated.Content), 203)
	assert.Nil(t, gated.Annotate.Entities)
}

func TestSearch_MegaKeepsEverything(t *testing.T) {
	long := strings.Repeat("a", 300)
	reader := &stubReader{searchResult: &storage.SearchResult{
		Articles: []domain.NewsArticle{
			{ID: "a1", Content: &long, Annotate: &domain.Annotation{
				Entities: []domain.EntityData{{Word: strPtr("Jakarta")}},
			}},
		},
		Total: 1,
	}}
	svc := NewNewsService(reader)

	page, err := svc.Search(context.Background(), &domain.SearchParams{}, domain.TierMega)
	require.NoError(t, err)
	assert.Equal(t, long, *page.Articles[0].Content)
	assert.Len(t, page.Articles[0].Annotate.Entities, 1)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewNewsService(&stubReader{})

	_, err := svc.GetByID(context.Background(), "missing", domain.TierPro)
	require.Error(t, err)

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, nf.Message, "missing")
}

func TestGetByID_GatesArticle(t *testing.T) {
	long := strings.Repeat("x", 400)
	reader := &stubReader{article: &domain.NewsArticle{ID: "a1", Content: &long}}
	svc := NewNewsService(reader)

	article, err := svc.GetByID(context.Background(), "a1", domain.TierBasic)
	require.NoError(t, err)
	assert.Equal(t, "a1", reader.lastID)
	assert.Len(t, []rune(*article.Content), 203)

	// The reader's copy stays full length; gating must not write through.
	assert.Len(t, []rune(*reader.article.Content), 400)
}

func TestSearch_PropagatesBackendError(t *testing.T) {
	reader := &stubReader{err: apperr.NewBackend("search returned status 502", nil)}
	svc := NewNewsService(reader)

	_, err := svc.Search(context.Background(), &domain.SearchParams{}, domain.TierPro)
	var be *apperr.BackendError
	require.ErrorAs(t, err, &be)
}
