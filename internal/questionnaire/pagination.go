package questionnaire

// DefaultPageSize is the number of questions shown per page.
const DefaultPageSize = 11

// Pagination tracks which slice of the questionnaire is on screen.
type Pagination struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// NewPagination builds pagination for pageSize, clamping it to [1, TotalQuestions].
func NewPagination(pageSize int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, TotalQuestions)
	return Pagination{
		PageSize:   pageSize,
		TotalPages: (TotalQuestions + pageSize - 1) / pageSize,
	}
}

// Valid reports whether page is inside [0, TotalPages).
func (p Pagination) Valid(page int) bool {
	return page >= 0 && page < p.TotalPages
}

// Bounds returns the absolute [start, end) question indexes of page.
func (p Pagination) Bounds(page int) (int, int) {
	start := page * p.PageSize
	end := min(start+p.PageSize, TotalQuestions)
	return start, end
}

// PageOf returns the page that holds the absolute question index.
func (p Pagination) PageOf(index int) int {
	return index / p.PageSize
}

// IsLast reports whether the current page is the final one.
func (p Pagination) IsLast() bool {
	return p.CurrentPage == p.TotalPages-1
}
