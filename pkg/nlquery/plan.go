package nlquery

// Predicate is one WHERE-clause entry in structured form. The warning
// analyzer reads these instead of re-parsing the generated SQL text.
type Predicate struct {
	Column    ColumnRef  `json:"column"`
	Kind      FilterKind `json:"kind"`
	Ownership bool       `json:"ownership"` // injected row-level scoping predicate
	Wildcard  bool       `json:"wildcard"`  // pattern with a leading wildcard
}

// QueryPlan is the advisory, never-executed artifact the builder emits for
// a given intent. SQL and Args are display output; the structured fields
// exist for the cost/warning analyzer.
type QueryPlan struct {
	SQL            string        `json:"sql"`
	Args           []interface{} `json:"args,omitempty"`
	AffectedTables []string      `json:"affected_tables"`
	Explanation    string        `json:"explanation"`

	PrimaryTable  string      `json:"primary_table"`
	Predicates    []Predicate `json:"predicates,omitempty"`
	JoinCount     int         `json:"join_count"`
	Limit         int         `json:"limit,omitempty"`
	Aggregate     bool        `json:"aggregate"`
	GroupByTables []string    `json:"group_by_tables,omitempty"`
	NestedSelects int         `json:"nested_selects,omitempty"`
}

// HasFilter reports whether the plan carries any predicate at all,
// including the injected ownership predicate. The implicit ownership scope
// deliberately counts as a WHERE clause: a scoped caller asking "how many
// contacts do I have" should not be warned about a missing filter.
func (p *QueryPlan) HasFilter() bool {
	return len(p.Predicates) > 0
}

// HasExplicitFilter reports whether the plan has a predicate that came from
// the intent rather than from ownership scoping.
func (p *QueryPlan) HasExplicitFilter() bool {
	for _, pred := range p.Predicates {
		if !pred.Ownership {
			return true
		}
	}
	return false
}
