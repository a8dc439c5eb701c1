package report

import (
	"bytes"
	"testing"

	"bookmarks/marklint/internal/domain"
)

func TestDumpTitles(t *testing.T) {
	root := &domain.Folder{Title: "/", Children: []domain.Node{
		&domain.Link{Title: "Top", URI: "http://top.com"},
		&domain.Folder{Title: "Work", Children: []domain.Node{
			&domain.Link{Title: "Example", URI: "http://example.com"},
		}},
	}}

	var buf bytes.Buffer
	DumpTitles(&buf, root)

	want := ": Top: http://top.com\n/Work: Example: http://example.com\n"
	if got := buf.String(); got != want {
		t.Errorf("DumpTitles output = %q, want %q", got, want)
	}
}
