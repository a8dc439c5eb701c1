package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookmarks/marklint/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// ParseNetscapeHTML builds a bookmark tree from a Netscape bookmark-file
// export (the "Export Bookmarks to HTML" format). The resulting tree feeds
// the same analysis as a JSON backup; ids and guids are synthetic since the
// HTML format does not carry them.
func ParseNetscapeHTML(r io.Reader) (domain.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks HTML: %w", err)
	}

	root := &domain.Folder{
		GUID:  "root________",
		Title: domain.NormalizeTitle(""),
		Root:  "placesRoot",
	}

	list := doc.Find("dl").First()
	if list.Length() == 0 {
		return nil, fmt.Errorf("no bookmark list found in HTML document")
	}

	b := &netscapeBuilder{nextID: 1}
	b.buildList(list, root)

	log.Debugf("Parsed %d bookmarks from HTML export", len(root.CollectURLs()))
	return root, nil
}

type netscapeBuilder struct {
	nextID int64
}

func (b *netscapeBuilder) next() int64 {
	id := b.nextID
	b.nextID++
	return id
}

// buildList walks the direct entries of one <dl>. Folders show up as
// <dt><h3>, links as <dt><a>; the html parser nests a folder's own <dl>
// and any trailing <hr> separator inside the <dt> they follow.
func (b *netscapeBuilder) buildList(list *goquery.Selection, parent *domain.Folder) {
	list.Children().Each(func(_ int, entry *goquery.Selection) {
		switch goquery.NodeName(entry) {
		case "dt":
			b.buildEntry(entry, parent)
		case "hr":
			b.appendSeparator(parent)
		}
	})
}

// buildEntry walks one <dt>'s children in document order. A <dl> following
// an <h3> holds that folder's entries.
func (b *netscapeBuilder) buildEntry(entry *goquery.Selection, parent *domain.Folder) {
	var folder *domain.Folder
	entry.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "h3":
			folder = &domain.Folder{
				ID:           b.next(),
				Index:        len(parent.Children),
				Title:        domain.NormalizeTitle(strings.TrimSpace(child.Text())),
				DateAdded:    attrTimestamp(child, "add_date"),
				LastModified: attrTimestamp(child, "last_modified"),
			}
			parent.Children = append(parent.Children, folder)
		case "dl":
			if folder != nil {
				b.buildList(child, folder)
			}
		case "a":
			uri, _ := child.Attr("href")
			iconURI, _ := child.Attr("icon_uri")
			keyword, _ := child.Attr("shortcuturl")
			tags, _ := child.Attr("tags")
			parent.Children = append(parent.Children, &domain.Link{
				ID:           b.next(),
				Index:        len(parent.Children),
				Title:        strings.TrimSpace(child.Text()),
				DateAdded:    attrTimestamp(child, "add_date"),
				LastModified: attrTimestamp(child, "last_modified"),
				URI:          uri,
				IconURI:      iconURI,
				Keyword:      keyword,
				Tags:         tags,
			})
		case "hr":
			b.appendSeparator(parent)
		}
	})
}

func (b *netscapeBuilder) appendSeparator(parent *domain.Folder) {
	parent.Children = append(parent.Children, &domain.Separator{
		ID:    b.next(),
		Index: len(parent.Children),
	})
}

func attrTimestamp(sel *goquery.Selection, name string) int64 {
	val, ok := sel.Attr(name)
	if !ok {
		return 0
	}
	ts, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
