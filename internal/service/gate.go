package service

// Tier-based content gating. Pure transforms: the input article is never
// mutated, and gating an already-gated article yields the same result.

import (
	"github.com/nusarithm/news-gateway/internal/domain"
)

const (
	// contentPreviewRunes is counted in Unicode characters, not bytes, so
	// multi-byte scripts truncate at the same visible length.
	contentPreviewRunes = 200
	contentPreviewMark  = "..."
)

// GateArticle applies the tier's redaction rules to one article: content
// truncation for tiers without full-content access and entity stripping for
// tiers without entity access. Sentiment and emotion are never redacted.
func GateArticle(article domain.NewsArticle, tier domain.Tier) domain.NewsArticle {
	if !tier.HasFullContent() && article.Content != nil {
		runes := []rune(*article.Content)
		if len(runes) > contentPreviewRunes {
			preview := string(runes[:contentPreviewRunes]) + contentPreviewMark
			article.Content = &preview
		}
	}

	if !tier.HasEntities() && article.Annotate != nil && article.Annotate.Entities != nil {
		// Copy the annotation before clearing so the caller's article is
		// left untouched.
		annotate := *article.Annotate
		annotate.Entities = nil
		article.Annotate = &annotate
	}

	return article
}

// GateArticles applies GateArticle element-wise.
func GateArticles(articles []domain.NewsArticle, tier domain.Tier) []domain.NewsArticle {
	gated := make([]domain.NewsArticle, len(articles))
	for i, a := range articles {
		gated[i] = GateArticle(a, tier)
	}
	return gated
}
