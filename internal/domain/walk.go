package domain

// Walk visits every Link in n's subtree depth-first in document order,
// calling fn with the `/`-joined folder path the link lives under.
// Separators are skipped. A folder whose title is "" or "/" contributes no
// path segment, so links directly under the root keep the parent path.
//
// Walk performs no I/O and may be re-run from the same root; two runs visit
// the same links in the same order.
func Walk(n Node, path string, fn func(path string, link *Link)) {
	switch node := n.(type) {
	case *Link:
		fn(path, node)
	case *Folder:
		next := path
		if node.Title != "" && node.Title != "/" {
			next = path + "/" + node.Title
		}
		for _, child := range node.Children {
			Walk(child, next, fn)
		}
	}
}
