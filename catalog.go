package fragql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"
	"go.uber.org/multierr"
)

// Catalog checks table and field names against a DBML schema before they are
// handed to the builder. The builder itself never validates anything; a
// Catalog is an optional guard in front of it.
type Catalog struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	fields  map[string]map[string]*dbml.Column // table -> field -> column
}

// NewCatalog indexes the tables and columns of a DBML project.
func NewCatalog(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, ErrNilProject
	}

	c := &Catalog{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		c.tables[table.Name] = table
		c.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			c.fields[table.Name][col.Name] = col
		}
	}

	return c, nil
}

// Project returns the schema the catalog was built from.
func (c *Catalog) Project() *dbml.Project {
	return c.project
}

// Tables returns the schema's table names, sorted.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TryT creates a table reference, returning an error if the table is unknown
// or the alias is not a plain identifier.
func (c *Catalog) TryT(name string, alias ...string) (Table, error) {
	if err := c.validateTable(name); err != nil {
		return Table{}, fmt.Errorf("invalid table: %w", err)
	}
	t := T(name, alias...)
	if t.Alias != "" && !isValidSQLIdentifier(t.Alias) {
		return Table{}, newSchemaError("alias", t.Alias)
	}
	return t, nil
}

// T creates a table reference and panics if it is invalid.
func (c *Catalog) T(name string, alias ...string) Table {
	t, err := c.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a field, returning an error if the column is unknown.
// Accepted forms are "col", "table.col", "alias.col", "*" and "table.*".
func (c *Catalog) TryF(name string, alias ...string) (Field, error) {
	if err := c.validateField(name); err != nil {
		return Field{}, fmt.Errorf("invalid field: %w", err)
	}
	f := F(name, alias...)
	if f.Alias != "" && !isValidSQLIdentifier(f.Alias) {
		return Field{}, newSchemaError("alias", f.Alias)
	}
	return f, nil
}

// F creates a field and panics if it is invalid.
func (c *Catalog) F(name string, alias ...string) Field {
	f, err := c.TryF(name, alias...)
	if err != nil {
		panic(err)
	}
	return f
}

// ValidateTables checks every name and reports all unknown tables at once.
func (c *Catalog) ValidateTables(names ...string) error {
	var err error
	for _, name := range names {
		err = multierr.Append(err, c.validateTable(name))
	}
	return err
}

// ValidateFields checks every name and reports all unknown fields at once.
func (c *Catalog) ValidateFields(names ...string) error {
	var err error
	for _, name := range names {
		err = multierr.Append(err, c.validateField(name))
	}
	return err
}

func (c *Catalog) validateTable(name string) error {
	if _, ok := c.tables[name]; !ok {
		return newSchemaError("table", name)
	}
	return nil
}

func (c *Catalog) validateField(field string) error {
	if field == "*" {
		return nil
	}

	qualifier, column, qualified := strings.Cut(field, ".")
	if !qualified {
		column = field
	}

	// table.col must be in that table; alias.col in any table
	if qualified {
		if cols, ok := c.fields[qualifier]; ok {
			if column == "*" {
				return nil
			}
			if _, ok := cols[column]; ok {
				return nil
			}
			return newSchemaError("field", field, fmt.Sprintf("table '%s' has no column '%s'", qualifier, column))
		}
		if !isValidSQLIdentifier(qualifier) {
			return newSchemaError("field", field, "qualifier must be a table name or alias")
		}
		if column == "*" {
			return nil
		}
	}

	for _, cols := range c.fields {
		if _, ok := cols[column]; ok {
			return nil
		}
	}
	return newSchemaError("field", field)
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}
