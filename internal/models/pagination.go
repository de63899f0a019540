package models

// Pagination carries listing metadata returned alongside paginated rows.
type Pagination struct {
	Total       int  `json:"total"`
	Pages       int  `json:"pages"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes pagination metadata for a 1-based page of the given
// size over total rows. Pages beyond the last yield an empty page, never an
// error, so HasNext is false and HasPrev true whenever any rows exist.
func NewPagination(page, pageSize, total int) *Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	return &Pagination{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		HasNext:     page < pages,
		HasPrev:     page > 1 && total > 0,
	}
}
