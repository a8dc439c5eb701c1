package parser

import "fmt"

// UnrecognizedNodeTypeError reports a node whose type discriminant matches
// none of the three Mozilla place kinds. The whole parse is aborted.
type UnrecognizedNodeTypeError struct {
	Type string
}

func (e *UnrecognizedNodeTypeError) Error() string {
	return fmt.Sprintf("unrecognized bookmark node type %q", e.Type)
}

// MissingRequiredFieldError reports a node that lacks one of the fields
// every backup node must carry.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("bookmark node is missing required field %q", e.Field)
}

// MalformedChildError reports a children entry that is not a JSON object.
type MalformedChildError struct {
	Folder string
	Index  int
}

func (e *MalformedChildError) Error() string {
	return fmt.Sprintf("child %d of folder %q is not an object", e.Index, e.Folder)
}
