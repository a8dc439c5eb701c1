package report

import (
	"fmt"
	"io"

	"bookmarks/marklint/internal/domain"
)

// DumpTitles writes one "path: title: uri" line per bookmark in document
// order. Useful for eyeballing the flattened structure of a backup.
func DumpTitles(w io.Writer, root domain.Node) {
	domain.Walk(root, "", func(path string, link *domain.Link) {
		fmt.Fprintf(w, "%s: %s\n", path, link)
	})
}
