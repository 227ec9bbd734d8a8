package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps Go struct field names to database columns for a single
// table, providing qualified column lists for SELECT statements.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	byName map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified table
// and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byName: make(map[string]string),
	}
}

// Project registers a column-to-field mapping. Registration order determines
// column order in SELECT statements.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.byName[field] = fmt.Sprintf("%s.%s", p.alias, column)
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the comma-separated qualified column list.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, field := range p.fields {
		cols[i] = p.byName[field]
	}
	return strings.Join(cols, ", ")
}

// Column returns the qualified column for a field name. Unknown fields
// return an empty string.
func (p *ProjectionMap) Column(field string) string {
	return p.byName[field]
}
