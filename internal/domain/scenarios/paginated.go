package scenarios

// PaginatedResult represents a page of scenario summaries with metadata
type PaginatedResult struct {
	Data       []Summary `json:"scenarios"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"total_pages"`
}
