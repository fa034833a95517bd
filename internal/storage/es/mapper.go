package es

import (
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/nusarithm/news-gateway/internal/domain"
)

// searchEnvelope is the subset of the backend response the gateway reads.
// Hit sources stay raw so each record can be decoded independently.
type searchEnvelope struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []hitEnvelope `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]aggregate `json:"aggregations"`
	Error        json.RawMessage      `json:"error"`
}

type hitEnvelope struct {
	ID     string          `json:"_id"`
	Source json.RawMessage `json:"_source"`
}

type aggregate struct {
	Buckets       []bucket `json:"buckets"`
	Value         *float64 `json:"value"`
	ValueAsString *string  `json:"value_as_string"`
}

type bucket struct {
	Key      any   `json:"key"`
	DocCount int64 `json:"doc_count"`
}

// parseHits decodes each hit into a NewsArticle. A record that does not fit
// the article shape is dropped, not surfaced: one malformed upstream
// document must never abort a page of valid results.
func parseHits(env *searchEnvelope) []domain.NewsArticle {
	articles := make([]domain.NewsArticle, 0, len(env.Hits.Hits))
	for _, hit := range env.Hits.Hits {
		var article domain.NewsArticle
		if err := json.Unmarshal(hit.Source, &article); err != nil {
			slog.Warn("Dropping unparseable hit", "id", hit.ID, "error", err)
			continue
		}
		article.ID = hit.ID
		articles = append(articles, article)
	}
	return articles
}

func parseTotal(env *searchEnvelope) int64 {
	return env.Hits.Total.Value
}

// parseBuckets maps a terms aggregation into SourceInfo entries. Buckets
// with non-string keys are skipped.
func parseBuckets(agg aggregate) []domain.SourceInfo {
	sources := make([]domain.SourceInfo, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		key, ok := b.Key.(string)
		if !ok {
			continue
		}
		sources = append(sources, domain.SourceInfo{Name: key, DocCount: b.DocCount})
	}
	return sources
}

// parseTrending merges entity and tag buckets into one list ordered by
// count descending. Entities are appended first and the sort is stable, so
// an entity and a tag with equal counts keep entity-before-tag order.
func parseTrending(entities, tags aggregate) []domain.TrendingItem {
	items := make([]domain.TrendingItem, 0, len(entities.Buckets)+len(tags.Buckets))
	items = collectTrending(entities, domain.TrendingCategoryEntity, items)
	items = collectTrending(tags, domain.TrendingCategoryTag, items)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

func collectTrending(agg aggregate, category string, items []domain.TrendingItem) []domain.TrendingItem {
	for _, b := range agg.Buckets {
		key, ok := b.Key.(string)
		if !ok {
			continue
		}
		items = append(items, domain.TrendingItem{
			Keyword:  key,
			Category: category,
			Count:    b.DocCount,
		})
	}
	return items
}
