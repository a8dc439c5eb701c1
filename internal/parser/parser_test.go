package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"bookmarks/marklint/internal/domain"
)

const sampleBackup = `{
	"guid": "root________",
	"title": "",
	"index": 0,
	"dateAdded": 1525413386060000,
	"lastModified": 1539100273023000,
	"id": 1,
	"typeCode": 2,
	"root": "placesRoot",
	"type": "text/x-moz-place-container",
	"children": [
		{
			"guid": "menu________",
			"title": "menu",
			"index": 0,
			"dateAdded": 1525413386060000,
			"lastModified": 1539100273023000,
			"id": 2,
			"typeCode": 2,
			"type": "text/x-moz-place-container",
			"children": [
				{
					"guid": "aaaaaaaaaaaa",
					"title": "Example",
					"index": 0,
					"dateAdded": 1525413386060000,
					"lastModified": 1539100273023000,
					"id": 3,
					"typeCode": 1,
					"charset": "UTF-8",
					"iconuri": "http://example.com/favicon.ico",
					"type": "text/x-moz-place",
					"uri": "http://example.com/"
				},
				{
					"guid": "bbbbbbbbbbbb",
					"title": "",
					"index": 1,
					"dateAdded": 1525413386060000,
					"lastModified": 1539100273023000,
					"id": 4,
					"typeCode": 3,
					"type": "text/x-moz-place-separator"
				},
				{
					"guid": "cccccccccccc",
					"title": "Other",
					"index": 2,
					"dateAdded": 1525413386060000,
					"lastModified": 1539100273023000,
					"id": 5,
					"typeCode": 1,
					"type": "text/x-moz-place",
					"uri": "https://other.example/"
				}
			]
		}
	]
}`

func TestParseBackup(t *testing.T) {
	root, err := ParseBackup(strings.NewReader(sampleBackup))
	if err != nil {
		t.Fatalf("ParseBackup() error: %v", err)
	}

	folder, ok := root.(*domain.Folder)
	if !ok {
		t.Fatalf("root is %T, want *domain.Folder", root)
	}
	if folder.Title != "/" {
		t.Errorf("root title = %q, want %q (empty title normalized)", folder.Title, "/")
	}
	if folder.Root != "placesRoot" {
		t.Errorf("root marker = %q, want %q", folder.Root, "placesRoot")
	}
	if len(folder.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(folder.Children))
	}

	menu, ok := folder.Children[0].(*domain.Folder)
	if !ok {
		t.Fatalf("child is %T, want *domain.Folder", folder.Children[0])
	}
	if len(menu.Children) != 3 {
		t.Fatalf("menu has %d children, want 3", len(menu.Children))
	}

	link, ok := menu.Children[0].(*domain.Link)
	if !ok {
		t.Fatalf("first menu child is %T, want *domain.Link", menu.Children[0])
	}
	if link.URI != "http://example.com/" {
		t.Errorf("link uri = %q, want %q", link.URI, "http://example.com/")
	}
	if link.Charset != "UTF-8" {
		t.Errorf("link charset = %q, want %q", link.Charset, "UTF-8")
	}
	if link.Keyword != "" {
		t.Errorf("absent keyword should default to empty, got %q", link.Keyword)
	}
	if link.DateAdded != 1525413386060000 {
		t.Errorf("link dateAdded = %d, want 1525413386060000", link.DateAdded)
	}

	if _, ok := menu.Children[1].(*domain.Separator); !ok {
		t.Errorf("second menu child is %T, want *domain.Separator", menu.Children[1])
	}

	want := []string{"http://example.com/", "https://other.example/"}
	if got := root.CollectURLs(); !reflect.DeepEqual(got, want) {
		t.Errorf("CollectURLs() = %v, want %v", got, want)
	}
}

func TestBuildNodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		check func(*testing.T, error)
	}{
		{
			name: "unrecognized node type",
			raw: map[string]any{
				"type": "text/x-moz-unknown",
			},
			check: func(t *testing.T, err error) {
				var typeErr *UnrecognizedNodeTypeError
				if !errors.As(err, &typeErr) {
					t.Fatalf("error = %v, want UnrecognizedNodeTypeError", err)
				}
				if typeErr.Type != "text/x-moz-unknown" {
					t.Errorf("carried type = %q, want %q", typeErr.Type, "text/x-moz-unknown")
				}
			},
		},
		{
			name: "missing type field",
			raw:  map[string]any{"title": "x"},
			check: func(t *testing.T, err error) {
				var fieldErr *MissingRequiredFieldError
				if !errors.As(err, &fieldErr) {
					t.Fatalf("error = %v, want MissingRequiredFieldError", err)
				}
				if fieldErr.Field != "type" {
					t.Errorf("carried field = %q, want %q", fieldErr.Field, "type")
				}
			},
		},
		{
			name: "missing guid on link",
			raw: map[string]any{
				"type":         domain.TypePlace,
				"id":           1,
				"index":        0,
				"dateAdded":    1,
				"lastModified": 2,
				"title":        "t",
				"typeCode":     1,
			},
			check: func(t *testing.T, err error) {
				var fieldErr *MissingRequiredFieldError
				if !errors.As(err, &fieldErr) {
					t.Fatalf("error = %v, want MissingRequiredFieldError", err)
				}
				if fieldErr.Field != "guid" {
					t.Errorf("carried field = %q, want %q", fieldErr.Field, "guid")
				}
			},
		},
		{
			name: "missing dateAdded on separator",
			raw: map[string]any{
				"type":         domain.TypeSeparator,
				"guid":         "g",
				"id":           1,
				"index":        0,
				"lastModified": 2,
				"title":        "",
				"typeCode":     3,
			},
			check: func(t *testing.T, err error) {
				var fieldErr *MissingRequiredFieldError
				if !errors.As(err, &fieldErr) {
					t.Fatalf("error = %v, want MissingRequiredFieldError", err)
				}
				if fieldErr.Field != "dateAdded" {
					t.Errorf("carried field = %q, want %q", fieldErr.Field, "dateAdded")
				}
			},
		},
		{
			name: "scalar child aborts the parse",
			raw: map[string]any{
				"type":         domain.TypeContainer,
				"guid":         "g",
				"id":           1,
				"index":        0,
				"dateAdded":    1,
				"lastModified": 2,
				"title":        "Broken",
				"typeCode":     2,
				"children":     []any{"not an object"},
			},
			check: func(t *testing.T, err error) {
				var childErr *MalformedChildError
				if !errors.As(err, &childErr) {
					t.Fatalf("error = %v, want MalformedChildError", err)
				}
				if childErr.Folder != "Broken" || childErr.Index != 0 {
					t.Errorf("carried folder/index = %q/%d, want Broken/0", childErr.Folder, childErr.Index)
				}
			},
		},
		{
			name: "bad child deep in the tree aborts the whole parse",
			raw: map[string]any{
				"type":         domain.TypeContainer,
				"guid":         "g",
				"id":           1,
				"index":        0,
				"dateAdded":    1,
				"lastModified": 2,
				"title":        "",
				"typeCode":     2,
				"children": []any{
					map[string]any{
						"type":         domain.TypeContainer,
						"guid":         "g2",
						"id":           2,
						"index":        0,
						"dateAdded":    1,
						"lastModified": 2,
						"title":        "Inner",
						"typeCode":     2,
						"children": []any{
							map[string]any{"type": "text/x-moz-unknown"},
						},
					},
				},
			},
			check: func(t *testing.T, err error) {
				var typeErr *UnrecognizedNodeTypeError
				if !errors.As(err, &typeErr) {
					t.Fatalf("error = %v, want UnrecognizedNodeTypeError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := BuildNode(tt.raw)
			if err == nil {
				t.Fatalf("BuildNode() returned %v, want error", node)
			}
			if node != nil {
				t.Errorf("BuildNode() returned partial node %v alongside error", node)
			}
			tt.check(t, err)
		})
	}
}

func TestBuildNodeTitleNormalization(t *testing.T) {
	folderRaw := map[string]any{
		"type":         domain.TypeContainer,
		"guid":         "g",
		"id":           1,
		"index":        0,
		"dateAdded":    1,
		"lastModified": 2,
		"title":        "",
		"typeCode":     2,
	}
	node, err := BuildNode(folderRaw)
	if err != nil {
		t.Fatalf("BuildNode() error: %v", err)
	}
	if folder := node.(*domain.Folder); folder.Title != "/" {
		t.Errorf("empty folder title = %q, want %q", folder.Title, "/")
	}

	linkRaw := map[string]any{
		"type":         domain.TypePlace,
		"guid":         "g",
		"id":           1,
		"index":        0,
		"dateAdded":    1,
		"lastModified": 2,
		"title":        "",
		"typeCode":     1,
		"uri":          "http://a.com",
	}
	node, err = BuildNode(linkRaw)
	if err != nil {
		t.Fatalf("BuildNode() error: %v", err)
	}
	// Links keep empty titles verbatim; only folders normalize.
	if link := node.(*domain.Link); link.Title != "" {
		t.Errorf("link title = %q, want empty", link.Title)
	}
}

func TestParseBackupRejectsBadJSON(t *testing.T) {
	if _, err := ParseBackup(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
