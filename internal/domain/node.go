package domain

import "fmt"

// Type discriminants used by Mozilla places backups.
const (
	TypeContainer = "text/x-moz-place-container"
	TypeSeparator = "text/x-moz-place-separator"
	TypePlace     = "text/x-moz-place"
)

// Node is any entry of a bookmark tree: a folder, a separator or a link.
type Node interface {
	// CollectURLs returns the URIs of every link in this node's subtree,
	// in document order.
	CollectURLs() []string
}

// Folder is a container of bookmark nodes. Children keep the order they had
// in the backup document.
type Folder struct {
	GUID         string
	ID           int64
	Index        int
	DateAdded    int64
	LastModified int64
	Title        string
	TypeCode     int
	Root         string
	Annos        any
	Children     []Node
}

// NormalizeTitle maps an empty folder title to "/". Firefox leaves the title
// of the top-level places container empty; downstream path construction
// treats "/" as a transparent root marker.
func NormalizeTitle(title string) string {
	if title == "" {
		return "/"
	}
	return title
}

func (f *Folder) CollectURLs() []string {
	var urls []string
	for _, child := range f.Children {
		urls = append(urls, child.CollectURLs()...)
	}
	return urls
}

func (f *Folder) String() string {
	return fmt.Sprintf("%s [%d]", f.Title, f.Index)
}

// Separator is a visual divider between bookmarks. It carries no URL and has
// no children.
type Separator struct {
	GUID         string
	ID           int64
	Index        int
	DateAdded    int64
	LastModified int64
	Title        string
	TypeCode     int
}

func (s *Separator) CollectURLs() []string {
	return nil
}

// Link is a single bookmark pointing at a URI.
type Link struct {
	GUID         string
	ID           int64
	Index        int
	DateAdded    int64
	LastModified int64
	Title        string
	TypeCode     int
	URI          string
	Charset      string
	IconURI      string
	Keyword      string
	PostData     string
	Tags         string
	Annos        any
}

func (l *Link) CollectURLs() []string {
	return []string{l.URI}
}

func (l *Link) String() string {
	return fmt.Sprintf("%s: %s", l.Title, l.URI)
}
