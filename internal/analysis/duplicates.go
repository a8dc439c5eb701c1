package analysis

import (
	"bookmarks/marklint/internal/domain"
)

// URLGroup lists every folder path a single URI appears under.
type URLGroup struct {
	URL   string
	Paths []string
}

// FindDuplicateURLs walks the tree and groups links by exact URI string.
// Only URIs bookmarked two or more times are returned. Groups are ordered
// by first appearance of the URI, and paths within a group keep document
// order; the same path is kept once per occurrence.
func FindDuplicateURLs(root domain.Node) []URLGroup {
	var order []string
	byURL := make(map[string][]string)

	domain.Walk(root, "", func(path string, link *domain.Link) {
		if _, seen := byURL[link.URI]; !seen {
			order = append(order, link.URI)
		}
		byURL[link.URI] = append(byURL[link.URI], path)
	})

	var groups []URLGroup
	for _, url := range order {
		if paths := byURL[url]; len(paths) > 1 {
			groups = append(groups, URLGroup{URL: url, Paths: paths})
		}
	}
	return groups
}

// FolderPair names two folder paths whose descendant URI sets are identical.
type FolderPair struct {
	First  string
	Second string
}

// FindDuplicateFolderSets collects the set of URIs under each distinct
// folder path, then compares the sets pairwise. Each unordered pair of
// set-equal paths is reported exactly once; a path is never paired with
// itself. Quadratic in the number of distinct paths, which is fine for
// personal bookmark exports.
func FindDuplicateFolderSets(root domain.Node) []FolderPair {
	var order []string
	sets := make(map[string]map[string]struct{})

	domain.Walk(root, "", func(path string, link *domain.Link) {
		set, ok := sets[path]
		if !ok {
			set = make(map[string]struct{})
			sets[path] = set
			order = append(order, path)
		}
		set[link.URI] = struct{}{}
	})

	var pairs []FolderPair
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if equalSets(sets[order[i]], sets[order[j]]) {
				pairs = append(pairs, FolderPair{First: order[i], Second: order[j]})
			}
		}
	}
	return pairs
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for url := range a {
		if _, ok := b[url]; !ok {
			return false
		}
	}
	return true
}

// UniqueURLs returns the distinct URIs of the tree in order of first
// appearance. The link checker consumes this list.
func UniqueURLs(root domain.Node) []string {
	seen := make(map[string]struct{})
	var unique []string
	for _, url := range root.CollectURLs() {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		unique = append(unique, url)
	}
	return unique
}
