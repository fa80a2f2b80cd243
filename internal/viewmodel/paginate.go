package viewmodel

import "github.com/careconnect/portal-api/internal/model"

// DefaultPageSize is the page length of every appointment list view.
const DefaultPageSize = 4

// Page is one slice of an ordered appointment sequence plus the metadata
// pagination controls need. TotalPages of 0 or 1 disables navigation.
type Page struct {
	Items      []model.Appointment `json:"items"`
	Number     int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
}

// Paginate slices items into fixed-size pages and returns the requested
// 1-indexed page. Out-of-range requests clamp instead of failing: page < 1
// becomes 1 and page > TotalPages becomes TotalPages. An empty input yields
// an empty page with TotalPages 0.
func Paginate(items []model.Appointment, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := (len(items) + pageSize - 1) / pageSize
	if total == 0 {
		return Page{Items: []model.Appointment{}, Number: 1, TotalPages: 0}
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return Page{Items: items[start:end], Number: page, TotalPages: total}
}
