package bookmarks

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// Meta describes where a page sits in an owner's bookmark list.
type Meta struct {
	Page       int
	Pages      int
	TotalCount int
	PrevPage   *int
	NextPage   *int
	HasNext    bool
	HasPrev    bool
}

// NormalizePaging replaces values below 1 with the defaults and caps perPage
// at MaxPerPage.
func NormalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// NewMeta computes page metadata. Pages past the end are legal and simply
// have no next page.
func NewMeta(page, perPage, total int) Meta {
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}
	m := Meta{
		Page:       page,
		Pages:      pages,
		TotalCount: total,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if m.HasPrev {
		prev := page - 1
		m.PrevPage = &prev
	}
	if m.HasNext {
		next := page + 1
		m.NextPage = &next
	}
	return m
}
