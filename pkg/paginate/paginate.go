// Package paginate provides page-number pagination for the admin
// listing endpoints.
package paginate

// DefaultPerPage is the page size used by the admin listings.
const DefaultPerPage = 25

// Params selects one page of a result set.
type Params struct {
	Page    int
	PerPage int
}

// NewParams returns Params for the requested page. Pages below 1 clamp
// to the first page.
func NewParams(page int) Params {
	if page < 1 {
		page = 1
	}
	return Params{Page: page, PerPage: DefaultPerPage}
}

func (p Params) Limit() int {
	return p.PerPage
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta describes a page of results for the response payload.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewMeta computes pagination metadata for a page selection over a
// result set of total items.
func NewMeta(params Params, total int64) Meta {
	totalPages := int((total + int64(params.PerPage) - 1) / int64(params.PerPage))
	return Meta{
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1 && total > 0,
	}
}
