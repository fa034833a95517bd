package pagination

// Meta describes one page of an offset-paginated result set.
type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewMeta computes the page count from the backend-reported total. A zero
// total yields zero pages.
func NewMeta(page, size int, total int64) *Meta {
	var totalPages int64
	if total > 0 && size > 0 {
		totalPages = (total + int64(size) - 1) / int64(size)
	}

	return &Meta{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}
