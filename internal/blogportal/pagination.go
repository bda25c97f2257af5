package blogportal

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type pageWindow struct {
	page     int
	limit    int
	offset   int
	next     *int
	previous *int
}

// newPageWindow clamps page into [1, lastPage] and page size into [1, MaxPageSize].
// An empty result set still has one (empty) page.
func newPageWindow(count, page, pageSize int) pageWindow {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	lastPage := (count + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	w := pageWindow{
		page:   page,
		limit:  pageSize,
		offset: (page - 1) * pageSize,
	}
	if page < lastPage {
		next := page + 1
		w.next = &next
	}
	if page > 1 {
		prev := page - 1
		w.previous = &prev
	}

	return w
}
