// Package pagination normalizes client paging input and computes the
// envelope block attached to every list response.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Params is a clamped page/limit pair. Construct through Clamp so raw
// client values never reach a query.
type Params struct {
	Page  int
	Limit int
}

// Clamp bounds raw paging values: page minimum 1, limit minimum 1
// defaulting to 10, limit capped at 50.
func Clamp(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// New computes the envelope block for one page of a result set of
// `total` rows.
func New(total int, p Params) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
