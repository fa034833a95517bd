package domain

// NewsArticle is the core domain model. Upstream documents are heterogeneous,
// so every field except the document ID is optional; absence is not an error.
type NewsArticle struct {
	ID                   string      `json:"id"`
	Title                *string     `json:"title,omitempty"`
	Content              *string     `json:"content,omitempty"`
	Author               *string     `json:"author,omitempty"`
	Source               *string     `json:"source,omitempty"`
	URL                  *string     `json:"url,omitempty"`
	HeadlineImage        *string     `json:"headline_image,omitempty"`
	HeadlineCaption      *string     `json:"headline_caption,omitempty"`
	PublishDate          *string     `json:"publish_date,omitempty"`
	PublishDateTimestamp *int64      `json:"publish_date_timestamp,omitempty"`
	Tags                 []string    `json:"tags,omitempty"`
	ExtractedAt          *string     `json:"extracted_at,omitempty"`
	IngestedAt           *string     `json:"ingested_at,omitempty"`
	Annotate             *Annotation `json:"annotate,omitempty"`
}

// Annotation holds NLP enrichment attached to an article during ingestion.
type Annotation struct {
	Sentiment *SentimentData `json:"sentiment,omitempty"`
	Emotion   *EmotionData   `json:"emotion,omitempty"`
	Entities  []EntityData   `json:"entities,omitempty"`
	Status    *string        `json:"status,omitempty"`
}

type SentimentData struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

type EmotionData struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

type EntityData struct {
	Word        *string  `json:"word"`
	EntityGroup *string  `json:"entity_group"`
	Score       *float64 `json:"score"`
	Start       *int64   `json:"start,omitempty"`
	End         *int64   `json:"end,omitempty"`
}

// SourceInfo is a single terms-aggregation bucket: source name + doc count.
type SourceInfo struct {
	Name     string `json:"name"`
	DocCount int64  `json:"doc_count"`
}

type StatsData struct {
	TotalArticles int64        `json:"total_articles"`
	Sources       []SourceInfo `json:"sources"`
	DateRange     DateRange    `json:"date_range"`
}

type DateRange struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

const (
	TrendingCategoryEntity = "entity"
	TrendingCategoryTag    = "tag"
)

type TrendingItem struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
