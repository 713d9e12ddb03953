package model

import "testing"

func TestNewCursorPage(t *testing.T) {
	identity := func(s string) string { return s }

	page := NewCursorPage([]string{"a", "b", "c"}, 2, identity)
	if len(page.Content) != 2 || page.NextCursor != "b" || !page.HasNext() {
		t.Errorf("page with extra row = %+v", page)
	}

	last := NewCursorPage([]string{"a", "b"}, 2, identity)
	if len(last.Content) != 2 || last.HasNext() {
		t.Errorf("last page = %+v", last)
	}

	empty := NewCursorPage([]string{}, 2, identity)
	if len(empty.Content) != 0 || empty.HasNext() {
		t.Errorf("empty page = %+v", empty)
	}
}
