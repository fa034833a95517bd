package es

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusarithm/news-gateway/internal/domain"
)

func TestBuildSearchBody_MatchAllWhenEmpty(t *testing.T) {
	body := buildSearchBody(&domain.SearchParams{}, 10)

	query := body["query"].(map[string]any)
	assert.Contains(t, query, "match_all")
	assert.Equal(t, 0, body["from"])
	assert.Equal(t, 10, body["size"])
	assert.Equal(t, true, body["track_total_hits"])
}

func TestBuildSearchBody_TextQueryIsScoringClause(t *testing.T) {
	body := buildSearchBody(&domain.SearchParams{Query: "pemilu"}, 10)

	boolQuery := body["query"].(map[string]any)["bool"].(map[string]any)
	must := boolQuery["must"].([]any)
	require.Len(t, must, 1)
	assert.NotContains(t, boolQuery, "filter")

	multiMatch := must[0].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "pemilu", multiMatch["query"])
	assert.Equal(t, []string{"title^3", "content"}, multiMatch["fields"])
	assert.Equal(t, "best_fields", multiMatch["type"])
	assert.Equal(t, "AUTO", multiMatch["fuzziness"])
}

func TestBuildSearchBody_FiltersStayNonScoring(t *testing.T) {
	params := &domain.SearchParams{
		Source:    "kompas",
		Tag:       "politik",
		Sentiment: "negative",
		Emotion:   "anger",
		Author:    "redaksi",
	}
	body := buildSearchBody(params, 10)

	boolQuery := body["query"].(map[string]any)["bool"].(map[string]any)
	assert.NotContains(t, boolQuery, "must", "filter-only search must not add scoring clauses")

	filter := boolQuery["filter"].([]any)
	require.Len(t, filter, 5)

	fields := make([]string, 0, len(filter))
	for _, f := range filter {
		term := f.(map[string]any)["term"].(map[string]any)
		for field := range term {
			fields = append(fields, field)
		}
	}
	assert.ElementsMatch(t, []string{
		"source", "tags",
		"annotate.sentiment.label.keyword", "annotate.emotion.label.keyword",
		"author",
	}, fields)
}

func TestBuildSearchBody_DateRangeIsSingleFilter(t *testing.T) {
	body := buildSearchBody(&domain.SearchParams{DateFrom: "2024-01-01", DateTo: "2024-02-01"}, 10)

	filter := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
	require.Len(t, filter, 1)

	dateRange := filter[0].(map[string]any)["range"].(map[string]any)["ingested_at"].(map[string]any)
	assert.Equal(t, "2024-01-01", dateRange["gte"])
	assert.Equal(t, "2024-02-01", dateRange["lte"])
}

func TestBuildSearchBody_DateFromOnly(t *testing.T) {
	body := buildSearchBody(&domain.SearchParams{DateFrom: "2024-01-01"}, 10)

	filter := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
	dateRange := filter[0].(map[string]any)["range"].(map[string]any)["ingested_at"].(map[string]any)
	assert.Equal(t, "2024-01-01", dateRange["gte"])
	assert.NotContains(t, dateRange, "lte")
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		name   string
		params domain.SearchParams
		want   any
	}{
		{
			name:   "default is newest first",
			params: domain.SearchParams{},
			want:   []any{map[string]any{"ingested_at": map[string]any{"order": "desc"}}},
		},
		{
			name:   "unknown mode falls back to newest",
			params: domain.SearchParams{Sort: "loudest"},
			want:   []any{map[string]any{"ingested_at": map[string]any{"order": "desc"}}},
		},
		{
			name:   "oldest is ascending",
			params: domain.SearchParams{Sort: domain.SortOldest},
			want:   []any{map[string]any{"ingested_at": map[string]any{"order": "asc"}}},
		},
		{
			name:   "relevance with a text query sorts by score",
			params: domain.SearchParams{Sort: domain.SortRelevance, Query: "banjir"},
			want:   []any{"_score"},
		},
		{
			// The literal contract: relevance without a query falls through
			// to the time sort instead of adding a _score clause.
			name:   "relevance without a text query keeps the default sort",
			params: domain.SearchParams{Sort: domain.SortRelevance},
			want:   []any{map[string]any{"ingested_at": map[string]any{"order": "desc"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSort(&tt.params))
		})
	}
}

func TestBuildSearchBody_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		maxSize  int
		wantFrom int
		wantSize int
	}{
		{"first page default size", 0, 0, 100, 0, 10},
		{"explicit page and size", 3, 25, 100, 50, 25},
		{"size capped by tier before offset", 2, 999, 10, 10, 10},
		{"negative page floored", -5, 10, 100, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := buildSearchBody(&domain.SearchParams{Page: tt.page, Size: tt.size}, tt.maxSize)
			assert.Equal(t, tt.wantFrom, body["from"])
			assert.Equal(t, tt.wantSize, body["size"])
		})
	}
}

func TestBuildGetByIDBody(t *testing.T) {
	body := buildGetByIDBody("doc-42")

	ids := body["query"].(map[string]any)["ids"].(map[string]any)
	assert.Equal(t, []string{"doc-42"}, ids["values"])
	assert.Equal(t, 1, body["size"])
}

func TestBuildAggregationBodies(t *testing.T) {
	sources := buildSourcesBody()
	assert.Equal(t, 0, sources["size"])
	terms := sources["aggs"].(map[string]any)["sources"].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "source", terms["field"])
	assert.Equal(t, sourcesAggSize, terms["size"])

	stats := buildStatsBody()
	assert.Equal(t, true, stats["track_total_hits"])
	aggs := stats["aggs"].(map[string]any)
	assert.Contains(t, aggs, "sources")
	assert.Contains(t, aggs, "date_min")
	assert.Contains(t, aggs, "date_max")

	trending := buildTrendingBody()
	window := trending["query"].(map[string]any)["range"].(map[string]any)["ingested_at"].(map[string]any)
	assert.Equal(t, trendingWindow, window["gte"])
	tAggs := trending["aggs"].(map[string]any)
	assert.Contains(t, tAggs, "entities")
	assert.Contains(t, tAggs, "tags")
}
