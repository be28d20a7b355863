package pagination

// Pagination is the envelope every paginated list endpoint returns. Pages are
// 1-based.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Default returns the client-side pagination object used when the backend
// omits one: the requested page/limit with zero totals.
func Default(page, limit int) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return Pagination{Page: page, Limit: limit, Total: 0, TotalPages: 0}
}

// Normalize coerces a backend pagination envelope into a well-formed one,
// falling back to Default when p is nil.
func Normalize(p *Pagination, page, limit int) Pagination {
	if p == nil {
		return Default(page, limit)
	}
	out := *p
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.Limit <= 0 {
		out.Limit = limit
		if out.Limit <= 0 {
			out.Limit = 20
		}
	}
	if out.Total < 0 {
		out.Total = 0
	}
	if out.TotalPages < 0 {
		out.TotalPages = 0
	}
	return out
}

// Pager tracks the cursor state of one list view. Server-paginated views
// re-fetch after every mutation; client-paginated views re-slice an already
// fetched set with Slice.
type Pager struct {
	page       int
	limit      int
	totalPages int
}

func NewPager(limit int) *Pager {
	if limit <= 0 {
		limit = 20
	}
	return &Pager{page: 1, limit: limit}
}

func (p *Pager) Page() int  { return p.page }
func (p *Pager) Limit() int { return p.limit }

// SetTotalPages records the server-reported page count and re-clamps the
// current page into the new range.
func (p *Pager) SetTotalPages(totalPages int) {
	if totalPages < 0 {
		totalPages = 0
	}
	p.totalPages = totalPages
	p.page = clamp(p.page, 1, p.maxPage())
}

// SetTotal derives total_pages from a flat item count, for client-side
// pagination over an unpaginated response.
func (p *Pager) SetTotal(total int) {
	if total <= 0 {
		p.SetTotalPages(0)
		return
	}
	p.SetTotalPages((total + p.limit - 1) / p.limit)
}

// SetLimit changes the page size and resets to the first page.
func (p *Pager) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	p.limit = limit
	p.page = 1
}

// GoToPage clamps the requested page into [1, totalPages||1] and returns the
// page actually selected.
func (p *Pager) GoToPage(page int) int {
	p.page = clamp(page, 1, p.maxPage())
	return p.page
}

// Slice returns the [start, end) window of a fully fetched list of length
// total for the current page, for the endpoints that return flat lists.
func (p *Pager) Slice(total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	start := (p.page - 1) * p.limit
	if start >= total {
		return total, total
	}
	end := start + p.limit
	if end > total {
		end = total
	}
	return start, end
}

func (p *Pager) maxPage() int {
	if p.totalPages <= 0 {
		return 1
	}
	return p.totalPages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
