package domain

// PageDefaultSize is used when the caller does not request a page size.
const PageDefaultSize = 10

// Sort modes accepted by the search endpoint. Anything else falls back to
// newest-first.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortRelevance = "relevance"
)

// SearchParams carries the structured search request as bound from the query
// string. Zero values mean "not provided".
type SearchParams struct {
	Query     string `query:"q" json:"q,omitempty"`
	Source    string `query:"source" json:"source,omitempty"`
	Tag       string `query:"tag" json:"tag,omitempty"`
	Sentiment string `query:"sentiment" json:"sentiment,omitempty"`
	Emotion   string `query:"emotion" json:"emotion,omitempty"`
	Author    string `query:"author" json:"author,omitempty"`
	DateFrom  string `query:"date_from" json:"date_from,omitempty"`
	DateTo    string `query:"date_to" json:"date_to,omitempty"`
	Sort      string `query:"sort" json:"sort,omitempty"`
	Page      int    `query:"page" json:"page,omitempty"`
	Size      int    `query:"size" json:"size,omitempty"`
}

// EffectivePage floors the requested page at 1.
func (p *SearchParams) EffectivePage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// EffectiveSize resolves the page size against the tier cap. The cap is
// applied after the default so oversized requests degrade silently instead
// of erroring.
func (p *SearchParams) EffectiveSize(maxSize int) int {
	size := p.Size
	if size <= 0 {
		size = PageDefaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return size
}

// HasFilters reports whether any exact-term or date filter is present.
func (p *SearchParams) HasFilters() bool {
	return p.Source != "" || p.Tag != "" || p.Sentiment != "" ||
		p.Emotion != "" || p.Author != "" || p.DateFrom != "" || p.DateTo != ""
}
