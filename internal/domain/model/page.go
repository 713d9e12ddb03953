package model

// CursorPage is one slice of a key-set paginated listing. NextCursor is the key to pass
// back for the following page and is empty on the last one.
type CursorPage[T any] struct {
	Content    []T    `json:"content"`
	Size       int    `json:"size"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// NewCursorPage builds a page from a query that fetched size+1 rows, so the presence of an
// extra row tells whether another page exists.
func NewCursorPage[T any](rows []T, size int, cursorOf func(T) string) *CursorPage[T] {
	page := &CursorPage[T]{Content: rows, Size: size}
	if size > 0 && len(rows) > size {
		page.Content = rows[:size]
		page.NextCursor = cursorOf(rows[size-1])
	}
	return page
}

func (p *CursorPage[T]) HasNext() bool {
	return p.NextCursor != ""
}
