package pagination

import (
	"vidtube.com/pkg/constants"
)

// Params is a normalized page/limit pair.
type Params struct {
	Page  int64
	Limit int64
}

// Normalize clamps page to >= 1 and limit to [1, MaxLimit], filling defaults
// for zero values. Out-of-range values clamp rather than error so a page past
// the end is an empty list, never a failure.
func Normalize(page, limit int64) Params {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int { return int((p.Page - 1) * p.Limit) }

// Paged is the uniform list envelope.
type Paged struct {
	Items      interface{} `json:"items"`
	Page       int64       `json:"page"`
	Limit      int64       `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"total_pages"`
	HasNext    bool        `json:"has_next"`
}

func NewPaged(items interface{}, p Params, total int64) *Paged {
	totalPages := total / p.Limit
	if total%p.Limit != 0 {
		totalPages++
	}
	return &Paged{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
	}
}
