package models

// Page size limits shared by every paginated listing.
const (
	DefaultPage           = 1
	DefaultProductsLimit  = 10
	DefaultFavoritesLimit = 20
	MaxLimit              = 50
)

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block attached to paginated responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the metadata for a page of a result set with
// total matching rows. The page request must already be normalized.
func NewPagination(req PageRequest, total int64) Pagination {
	var totalPages int
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// NewPageRequest normalizes a raw page/limit pair. Zero values fall back to
// the first page and defaultLimit, negative values clamp to 1 and the limit
// never exceeds MaxLimit.
func NewPageRequest(page, limit, defaultLimit int) PageRequest {
	switch {
	case page == 0:
		page = DefaultPage
	case page < 0:
		page = 1
	}

	switch {
	case limit == 0:
		limit = defaultLimit
	case limit < 0:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return PageRequest{Page: page, Limit: limit}
}
