package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"bookmarks/marklint/internal/domain"

	log "github.com/sirupsen/logrus"
)

// ParseBackup reads a Firefox bookmarks backup (JSON format) and builds the
// bookmark tree. Any structural problem aborts the parse; no partial tree is
// returned.
func ParseBackup(r io.Reader) (domain.Node, error) {
	var raw map[string]any
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode backup JSON: %w", err)
	}

	root, err := BuildNode(raw)
	if err != nil {
		return nil, err
	}

	log.Debugf("Parsed bookmark backup rooted at %v", root)
	return root, nil
}

// BuildNode constructs the typed node for one backup entry, recursively
// building the children of containers in input order.
func BuildNode(raw map[string]any) (domain.Node, error) {
	nodeType, err := requireString(raw, "type")
	if err != nil {
		return nil, err
	}

	var node domain.Node
	switch nodeType {
	case domain.TypeContainer:
		node, err = buildFolder(raw)
	case domain.TypeSeparator:
		node, err = buildSeparator(raw)
	case domain.TypePlace:
		node, err = buildLink(raw)
	default:
		return nil, &UnrecognizedNodeTypeError{Type: nodeType}
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

func buildFolder(raw map[string]any) (*domain.Folder, error) {
	common, err := requireCommon(raw)
	if err != nil {
		return nil, err
	}

	folder := &domain.Folder{
		GUID:         common.guid,
		ID:           common.id,
		Index:        common.index,
		DateAdded:    common.dateAdded,
		LastModified: common.lastModified,
		Title:        domain.NormalizeTitle(common.title),
		TypeCode:     common.typeCode,
		Root:         optString(raw, "root"),
		Annos:        raw["annos"],
	}

	kids, ok := raw["children"]
	if !ok {
		return folder, nil
	}

	list, ok := kids.([]any)
	if !ok {
		return nil, &MalformedChildError{Folder: folder.Title, Index: 0}
	}
	for i, kid := range list {
		childRaw, ok := kid.(map[string]any)
		if !ok {
			return nil, &MalformedChildError{Folder: folder.Title, Index: i}
		}
		child, err := BuildNode(childRaw)
		if err != nil {
			return nil, err
		}
		folder.Children = append(folder.Children, child)
	}

	return folder, nil
}

func buildSeparator(raw map[string]any) (*domain.Separator, error) {
	common, err := requireCommon(raw)
	if err != nil {
		return nil, err
	}

	return &domain.Separator{
		GUID:         common.guid,
		ID:           common.id,
		Index:        common.index,
		DateAdded:    common.dateAdded,
		LastModified: common.lastModified,
		Title:        common.title,
		TypeCode:     common.typeCode,
	}, nil
}

func buildLink(raw map[string]any) (*domain.Link, error) {
	common, err := requireCommon(raw)
	if err != nil {
		return nil, err
	}

	return &domain.Link{
		GUID:         common.guid,
		ID:           common.id,
		Index:        common.index,
		DateAdded:    common.dateAdded,
		LastModified: common.lastModified,
		Title:        common.title,
		TypeCode:     common.typeCode,
		URI:          optString(raw, "uri"),
		Charset:      optString(raw, "charset"),
		IconURI:      optString(raw, "iconuri"),
		Keyword:      optString(raw, "keyword"),
		PostData:     optString(raw, "postData"),
		Tags:         optString(raw, "tags"),
		Annos:        raw["annos"],
	}, nil
}

// commonFields are present on every node kind in a backup.
type commonFields struct {
	guid         string
	id           int64
	index        int
	dateAdded    int64
	lastModified int64
	title        string
	typeCode     int
}

func requireCommon(raw map[string]any) (commonFields, error) {
	var c commonFields
	var err error

	if c.guid, err = requireString(raw, "guid"); err != nil {
		return c, err
	}
	if c.id, err = requireInt(raw, "id"); err != nil {
		return c, err
	}
	index, err := requireInt(raw, "index")
	if err != nil {
		return c, err
	}
	c.index = int(index)
	if c.dateAdded, err = requireInt(raw, "dateAdded"); err != nil {
		return c, err
	}
	if c.lastModified, err = requireInt(raw, "lastModified"); err != nil {
		return c, err
	}
	if c.title, err = requireString(raw, "title"); err != nil {
		return c, err
	}
	typeCode, err := requireInt(raw, "typeCode")
	if err != nil {
		return c, err
	}
	c.typeCode = int(typeCode)

	return c, nil
}

func requireString(raw map[string]any, field string) (string, error) {
	v, ok := raw[field]
	if !ok {
		return "", &MissingRequiredFieldError{Field: field}
	}
	s, _ := v.(string)
	return s, nil
}

func requireInt(raw map[string]any, field string) (int64, error) {
	v, ok := raw[field]
	if !ok {
		return 0, &MissingRequiredFieldError{Field: field}
	}
	return toInt64(v), nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func optString(raw map[string]any, field string) string {
	s, _ := raw[field].(string)
	return s
}
