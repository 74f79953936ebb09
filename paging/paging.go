// Package paging implements limit/offset pagination shared by list endpoints.
package paging

import "fmt"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds the unified pagination parameters.
type Params struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// Result holds one page of items.
type Result[T any] struct {
	Items       []T  `json:"items"`
	Total       int  `json:"total,omitempty"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	HasNextPage bool `json:"has_next"`
}

// NormalizeParams clamps Limit and Offset to acceptable ranges.
func NormalizeParams(params Params) Params {
	if params.Limit <= 0 || params.Limit > MaxLimit {
		params.Limit = DefaultLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return params
}

// PagingFunc fetches one page plus one extra row to detect a next page.
type PagingFunc[T any] func(limit, offset int) (items []T, total int, err error)

// Paginate applies pagination using the provided PagingFunc.
func Paginate[T any](params Params, paginateFunc PagingFunc[T]) (*Result[T], error) {
	params = NormalizeParams(params)
	items, total, err := paginateFunc(params.Limit+1, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}

	hasNextPage := false
	if len(items) > params.Limit {
		hasNextPage = true
		items = items[:params.Limit]
	}

	if items == nil {
		items = make([]T, 0)
	}

	return &Result[T]{
		Items:       items,
		Total:       total,
		Limit:       params.Limit,
		Offset:      params.Offset,
		HasNextPage: hasNextPage,
	}, nil
}
