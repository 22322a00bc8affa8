package model

// Page wraps a bounded listing slice with its paging metadata.
type Page struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalItems int64       `json:"total_items"`
	TotalPages int         `json:"total_pages"`
}

func NewPage(data interface{}, page, size int, totalItems int64) *Page {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalItems + int64(size) - 1) / int64(size))
	}
	return &Page{
		Data:       data,
		Page:       page,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
