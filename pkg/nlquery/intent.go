package nlquery

import (
	"fmt"
	"time"

	"sales-crm-be/pkg/nlquery/schema"
)

// Category is the closed set of question categories the classifier can
// assign. Immutable once produced.
type Category string

const (
	CategoryContact     Category = "CONTACT_QUERY"
	CategoryAccount     Category = "ACCOUNT_QUERY"
	CategoryActivity    Category = "ACTIVITY_QUERY"
	CategoryLead        Category = "LEAD_QUERY"
	CategoryQuotation   Category = "QUOTATION_QUERY"
	CategoryPerformance Category = "PERFORMANCE_QUERY"
	CategoryAggregation Category = "AGGREGATION_QUERY"
	CategoryComparison  Category = "COMPARISON_QUERY"
	CategoryTrend       Category = "TREND_QUERY"
	CategoryPrediction  Category = "PREDICTION_QUERY"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryContact, CategoryAccount, CategoryActivity, CategoryLead,
		CategoryQuotation, CategoryPerformance, CategoryAggregation,
		CategoryComparison, CategoryTrend, CategoryPrediction,
	}
}

// AggregationType is the optional aggregate the intent asks for. Presence
// implies the emitted query is non-row-returning in the conventional sense.
type AggregationType string

const (
	AggCount AggregationType = "count"
	AggSum   AggregationType = "sum"
	AggAvg   AggregationType = "avg"
	AggMin   AggregationType = "min"
	AggMax   AggregationType = "max"
)

// ColumnRef is a catalog-qualified column reference.
type ColumnRef struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

func (c ColumnRef) String() string {
	return c.Table + "." + c.Column
}

// FilterKind tags the variant carried by a Filter.
type FilterKind string

const (
	FilterEquals  FilterKind = "equals"
	FilterRange   FilterKind = "range"
	FilterIn      FilterKind = "in"
	FilterPattern FilterKind = "pattern"
)

// Filter is a tagged filter variant. Construct filters through the New*
// helpers so column references are validated against the catalog at
// construction time, not at use time.
type Filter struct {
	Column ColumnRef  `json:"column"`
	Kind   FilterKind `json:"kind"`

	Value   string   `json:"value,omitempty"`   // equals
	Values  []string `json:"values,omitempty"`  // in
	Min     string   `json:"min,omitempty"`     // range (empty = unbounded)
	Max     string   `json:"max,omitempty"`     // range (empty = unbounded)
	Pattern string   `json:"pattern,omitempty"` // pattern (SQL LIKE syntax)
}

func validateColumn(catalog schema.Catalog, ref ColumnRef) error {
	if !catalog.HasTable(ref.Table) {
		return fmt.Errorf("unknown table %q", ref.Table)
	}
	if !catalog.HasColumn(ref.Table, ref.Column) {
		return fmt.Errorf("unknown column %q on table %q", ref.Column, ref.Table)
	}
	return nil
}

// NewEqualsFilter builds an equality filter after validating the column.
func NewEqualsFilter(catalog schema.Catalog, ref ColumnRef, value string) (Filter, error) {
	if err := validateColumn(catalog, ref); err != nil {
		return Filter{}, err
	}
	return Filter{Column: ref, Kind: FilterEquals, Value: value}, nil
}

// NewRangeFilter builds a range filter. Either bound may be empty.
func NewRangeFilter(catalog schema.Catalog, ref ColumnRef, min, max string) (Filter, error) {
	if err := validateColumn(catalog, ref); err != nil {
		return Filter{}, err
	}
	if min == "" && max == "" {
		return Filter{}, fmt.Errorf("range filter on %s needs at least one bound", ref)
	}
	return Filter{Column: ref, Kind: FilterRange, Min: min, Max: max}, nil
}

// NewInFilter builds a set-membership filter.
func NewInFilter(catalog schema.Catalog, ref ColumnRef, values []string) (Filter, error) {
	if err := validateColumn(catalog, ref); err != nil {
		return Filter{}, err
	}
	if len(values) == 0 {
		return Filter{}, fmt.Errorf("in filter on %s needs at least one value", ref)
	}
	return Filter{Column: ref, Kind: FilterIn, Values: values}, nil
}

// NewPatternFilter builds a LIKE filter.
func NewPatternFilter(catalog schema.Catalog, ref ColumnRef, pattern string) (Filter, error) {
	if err := validateColumn(catalog, ref); err != nil {
		return Filter{}, err
	}
	return Filter{Column: ref, Kind: FilterPattern, Pattern: pattern}, nil
}

// TimeRange restricts the intent to a window over a timestamp column.
type TimeRange struct {
	Column ColumnRef `json:"column"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// Aggregation names the aggregate function and target column.
type Aggregation struct {
	Type   AggregationType `json:"type"`
	Column ColumnRef       `json:"column"`
}

// QueryIntent is the pipeline's central value object: a structured, typed
// representation of what a free-text question is asking for.
//
// Invariant: every table referenced by Filters, Aggregation, GroupBy or
// TimeRange must appear in Tables. The classifier keeps this by
// construction and the builder re-checks it defensively.
type QueryIntent struct {
	Category    Category     `json:"category"`
	Tables      []string     `json:"tables"`
	Filters     []Filter     `json:"filters,omitempty"`
	Aggregation *Aggregation `json:"aggregation,omitempty"`
	TimeRange   *TimeRange   `json:"time_range,omitempty"`
	GroupBy     []ColumnRef  `json:"group_by,omitempty"`
	Limit       int          `json:"limit,omitempty"` // 0 = no explicit limit
}

// HasTable reports whether the intent already lists the table.
func (q *QueryIntent) HasTable(name string) bool {
	for _, t := range q.Tables {
		if t == name {
			return true
		}
	}
	return false
}

// AddTable appends the table if not already listed, preserving order.
func (q *QueryIntent) AddTable(name string) {
	if !q.HasTable(name) {
		q.Tables = append(q.Tables, name)
	}
}

// ReferencedTables returns every table named by filters, aggregation,
// group-by or time range. Used by the builder's invariant check.
func (q *QueryIntent) ReferencedTables() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, f := range q.Filters {
		add(f.Column.Table)
	}
	if q.Aggregation != nil {
		add(q.Aggregation.Column.Table)
	}
	if q.TimeRange != nil {
		add(q.TimeRange.Column.Table)
	}
	for _, g := range q.GroupBy {
		add(g.Table)
	}
	return out
}

// ClassificationResult is what the classifier hands to the builder.
type ClassificationResult struct {
	Intent      QueryIntent `json:"intent"`
	Confidence  float64     `json:"confidence"` // in [0,1]
	Explanation string      `json:"explanation"`
}
