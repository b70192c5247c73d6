package model

const (
	defaultPage  = 1
	defaultLimit = 10
)

type PageParams struct {
	Page  int
	Limit int
}

// Normalize clamps the parameters to sane values: pages are 1-based and the
// limit falls back to the default when missing or non-positive.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of results plus the total count ignoring pagination.
type Page[T any] struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Data  []T   `json:"data"`
}

func NewPage[T any](data []T, total int64, params PageParams) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Data:  data,
	}
}
