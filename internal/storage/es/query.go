package es

import (
	"github.com/nusarithm/news-gateway/internal/domain"
)

// Index field holding the ingestion timestamp; all date filtering and
// recency sorting runs against it.
const ingestedAtField = "ingested_at"

const (
	sourcesAggSize  = 100
	trendingAggSize = 20
	trendingWindow  = "now-7d/d"
)

// buildSearchBody translates structured search params into the query
// document sent to the backend. Free text is a scoring must clause; every
// exact filter goes into the non-scoring filter context so it never skews
// relevance. track_total_hits keeps the reported total exact even though
// only one page is requested.
func buildSearchBody(p *domain.SearchParams, maxSize int) map[string]any {
	page := p.EffectivePage()
	size := p.EffectiveSize(maxSize)
	from := (page - 1) * size

	var must []any
	if p.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     p.Query,
				"fields":    []string{"title^3", "content"},
				"type":      "best_fields",
				"fuzziness": "AUTO",
			},
		})
	}

	var filter []any
	appendTerm := func(field, value string) {
		if value != "" {
			filter = append(filter, map[string]any{"term": map[string]any{field: value}})
		}
	}
	appendTerm("source", p.Source)
	appendTerm("tags", p.Tag)
	appendTerm("annotate.sentiment.label.keyword", p.Sentiment)
	appendTerm("annotate.emotion.label.keyword", p.Emotion)
	appendTerm("author", p.Author)

	dateRange := map[string]any{}
	if p.DateFrom != "" {
		dateRange["gte"] = p.DateFrom
	}
	if p.DateTo != "" {
		dateRange["lte"] = p.DateTo
	}
	if len(dateRange) > 0 {
		filter = append(filter, map[string]any{"range": map[string]any{ingestedAtField: dateRange}})
	}

	var query map[string]any
	if p.Query == "" && !p.HasFilters() {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		boolQuery := map[string]any{}
		if len(must) > 0 {
			boolQuery["must"] = must
		}
		if len(filter) > 0 {
			boolQuery["filter"] = filter
		}
		query = map[string]any{"bool": boolQuery}
	}

	return map[string]any{
		"query":            query,
		"sort":             buildSort(p),
		"from":             from,
		"size":             size,
		"track_total_hits": true,
	}
}

// buildSort resolves the sort clause. Relevance ordering is only honored
// when a text query is present; requesting it without one falls through to
// the newest-first default rather than erroring. That asymmetry is the
// documented contract, kept as-is.
func buildSort(p *domain.SearchParams) any {
	switch {
	case p.Sort == domain.SortOldest:
		return []any{map[string]any{ingestedAtField: map[string]any{"order": "asc"}}}
	case p.Sort == domain.SortRelevance && p.Query != "":
		return []any{"_score"}
	default:
		return []any{map[string]any{ingestedAtField: map[string]any{"order": "desc"}}}
	}
}

func buildGetByIDBody(id string) map[string]any {
	return map[string]any{
		"query": map[string]any{"ids": map[string]any{"values": []string{id}}},
		"size":  1,
	}
}

func buildSourcesBody() map[string]any {
	return map[string]any{
		"size": 0,
		"aggs": map[string]any{
			"sources": map[string]any{
				"terms": map[string]any{"field": "source", "size": sourcesAggSize},
			},
		},
	}
}

func buildStatsBody() map[string]any {
	return map[string]any{
		"size":             0,
		"track_total_hits": true,
		"aggs": map[string]any{
			"sources": map[string]any{
				"terms": map[string]any{"field": "source", "size": sourcesAggSize},
			},
			"date_min": map[string]any{"min": map[string]any{"field": ingestedAtField}},
			"date_max": map[string]any{"max": map[string]any{"field": ingestedAtField}},
		},
	}
}

func buildTrendingBody() map[string]any {
	return map[string]any{
		"size": 0,
		"query": map[string]any{
			"range": map[string]any{ingestedAtField: map[string]any{"gte": trendingWindow}},
		},
		"aggs": map[string]any{
			"entities": map[string]any{
				"terms": map[string]any{"field": "annotate.entities.word.keyword", "size": trendingAggSize},
			},
			"tags": map[string]any{
				"terms": map[string]any{"field": "tags", "size": trendingAggSize},
			},
		},
	}
}
