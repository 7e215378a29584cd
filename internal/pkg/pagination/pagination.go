package pagination

// Page is a normalized page request. Limit is capped at MaxLimit.
type Page struct {
	Page  int
	Limit int
}

const MaxLimit = 100

// New clamps page to >= 1 and falls back to defaultLimit for a
// non-positive or oversized limit.
func New(page, limit, defaultLimit int) Page {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > MaxLimit {
		limit = defaultLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total / limit).
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// Query is bound from ?page=&limit=.
type Query struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (q Query) Normalize(defaultLimit int) Page {
	return New(q.Page, q.Limit, defaultLimit)
}
