package fragql

import (
	"errors"
	"fmt"
)

// ErrNilProject is returned when a Catalog is created without a schema.
var ErrNilProject = errors.New("project cannot be nil")

// SchemaError reports a name that does not match the catalog's schema.
type SchemaError struct {
	Kind string // "table", "field" or "alias"
	Name string
	Hint string
}

func (e *SchemaError) Error() string {
	if e.Kind == "alias" {
		return fmt.Sprintf("alias '%s' is not a valid identifier", e.Name)
	}
	if e.Hint != "" {
		return fmt.Sprintf("%s '%s' not found in schema: %s", e.Kind, e.Name, e.Hint)
	}
	return fmt.Sprintf("%s '%s' not found in schema", e.Kind, e.Name)
}

func newSchemaError(kind, name string, hint ...string) error {
	err := &SchemaError{Kind: kind, Name: name}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
