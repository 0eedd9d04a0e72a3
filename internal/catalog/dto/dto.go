package dto

type ProductFilters struct {
	CategoryID  int64  `json:"category_id"`
	IsActive    *bool  `json:"is_active"`
	SearchQuery string `json:"search_query"` // name, slug, description
	SortBy      string `json:"sort_by"`      // name, price, created_at, rating
	SortOrder   string `json:"sort_order"`   // asc, desc
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}
