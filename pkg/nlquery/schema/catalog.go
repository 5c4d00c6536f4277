package schema

// Column describes a single queryable column.
type Column struct {
	Name      string
	Type      string // "uuid", "text", "numeric", "timestamp"
	Timestamp bool   // recognized timestamp column for time-range filters
}

// Index describes a declared index on a table.
type Index struct {
	Name    string
	Columns []string
}

// Relationship declares a join edge between two tables.
type Relationship struct {
	LocalColumn   string
	ForeignTable  string
	ForeignColumn string
}

// Table is the static metadata for one queryable table.
//
// SizeEstimate is a placeholder planning constant, not a live cardinality.
// Nothing feeds real row counts back into the catalog; treat these numbers
// as configuration when tuning the estimator.
type Table struct {
	Name            string
	Columns         []Column
	Indexes         []Index
	Relationships   []Relationship
	SizeEstimate    int64
	Small           bool   // safe to aggregate over without a warning
	OwnerColumn     string // column used for row-level ownership scoping
	TimestampColumn string // default column for time-range filters
}

// Catalog is an immutable set of table definitions. Declaration order is
// significant: the builder orders joins by catalog position so that output
// is stable across runs.
type Catalog struct {
	tables []Table
	byName map[string]int
}

// New builds a catalog from table definitions in declaration order.
// Duplicate table names keep the first definition.
func New(tables ...Table) Catalog {
	byName := make(map[string]int, len(tables))
	kept := make([]Table, 0, len(tables))
	for _, t := range tables {
		if _, exists := byName[t.Name]; exists {
			continue
		}
		byName[t.Name] = len(kept)
		kept = append(kept, t)
	}
	return Catalog{tables: kept, byName: byName}
}

// Table looks up a table definition by name.
func (c Catalog) Table(name string) (Table, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Table{}, false
	}
	return c.tables[idx], true
}

// Tables returns the table definitions in declaration order.
func (c Catalog) Tables() []Table {
	out := make([]Table, len(c.tables))
	copy(out, c.tables)
	return out
}

// Position returns the declaration index of a table, or -1 if unknown.
func (c Catalog) Position(name string) int {
	if idx, ok := c.byName[name]; ok {
		return idx
	}
	return -1
}

// HasTable reports whether the table is declared.
func (c Catalog) HasTable(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// HasColumn reports whether the table declares the column.
func (c Catalog) HasColumn(table, column string) bool {
	t, ok := c.Table(table)
	if !ok {
		return false
	}
	for _, col := range t.Columns {
		if col.Name == column {
			return true
		}
	}
	return false
}

// IsTimestampColumn reports whether the column is a recognized timestamp
// column on the table.
func (c Catalog) IsTimestampColumn(table, column string) bool {
	t, ok := c.Table(table)
	if !ok {
		return false
	}
	for _, col := range t.Columns {
		if col.Name == column {
			return col.Timestamp
		}
	}
	return false
}

// HasIndexOn reports whether any declared index on the table leads with the
// given column.
func (c Catalog) HasIndexOn(table, column string) bool {
	t, ok := c.Table(table)
	if !ok {
		return false
	}
	for _, idx := range t.Indexes {
		if len(idx.Columns) > 0 && idx.Columns[0] == column {
			return true
		}
	}
	return false
}

// RelationshipBetween finds a declared join edge between two tables, in
// either direction. The returned relationship is expressed from the "from"
// table's point of view.
func (c Catalog) RelationshipBetween(from, to string) (Relationship, bool) {
	if t, ok := c.Table(from); ok {
		for _, rel := range t.Relationships {
			if rel.ForeignTable == to {
				return rel, true
			}
		}
	}
	if t, ok := c.Table(to); ok {
		for _, rel := range t.Relationships {
			if rel.ForeignTable == from {
				// Flip direction so the caller can write from.<fk> = to.<pk>
				return Relationship{
					LocalColumn:   rel.ForeignColumn,
					ForeignTable:  to,
					ForeignColumn: rel.LocalColumn,
				}, true
			}
		}
	}
	return Relationship{}, false
}

// SizeEstimate returns the declared size estimate for a table. Unknown
// tables get a conservative default so the estimator leans high rather
// than low.
func (c Catalog) SizeEstimate(table string) int64 {
	if t, ok := c.Table(table); ok && t.SizeEstimate > 0 {
		return t.SizeEstimate
	}
	return 100000
}
