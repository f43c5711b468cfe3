package dto

import "math"

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Content   []T `json:"content"`
	Page      int `json:"page"`
	Size      int `json:"size"`
	TotalPage int `json:"totalPage"`
	TotalData int `json:"totalData"`
}

// NewPage maps models into a page using params for the page position.
func NewPage[M, T any](models []M, params QueryParams, totalData int, mapper func(M) T) Page[T] {
	content := make([]T, len(models))
	for i, mod := range models {
		content[i] = mapper(mod)
	}

	totalPage := 1
	if totalData > 0 && params.Limit > 0 {
		totalPage = int(math.Ceil(float64(totalData) / float64(params.Limit)))
	}

	return Page[T]{
		Content:   content,
		Page:      params.Page,
		Size:      params.Limit,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
