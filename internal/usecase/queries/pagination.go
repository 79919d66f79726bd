package queries

const (
	DefaultPageSize = 12
	MaxListLimit    = 200
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func ValidatePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate returns the bounds of the requested page within total items.
func Paginate(total, page, limit int) (start, end int, p Pagination) {
	limit = ValidateLimit(limit)
	page = ValidatePage(page)

	p = Pagination{Page: page, Limit: limit, Total: total}
	p.TotalPages = (total + limit - 1) / limit

	// pages past the end yield an empty window without computing page*limit
	if page-1 > total/limit {
		return total, total, p
	}
	start = min((page-1)*limit, total)
	end = start + limit
	if end > total {
		end = total
	}
	return start, end, p
}
