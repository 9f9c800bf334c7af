package entity

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const maxPageLimit = 100

// PageParams carries the page/limit/sort/filter inputs of every
// listing operation. Call Normalize before use; raw client input may
// contain zero or negative values.
type PageParams struct {
	Page      int
	Limit     int
	Query     string
	SortBy    string
	SortOrder SortOrder
	OwnerID   string
}

// Normalize clamps out-of-range page and limit values instead of
// rejecting them: page < 1 becomes 1, limit < 1 becomes defaultLimit,
// and limit is capped at maxPageLimit.
func (p PageParams) Normalize(defaultLimit int) PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPageMeta(total int64, p PageParams) PageMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return PageMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
