package analyzer

import (
	"fmt"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
)

// Estimator tuning constants. These are planning heuristics, not
// statistics: together with the catalog size estimates they are placeholder
// configuration and nothing feeds real cardinalities back into them.
const (
	filterReductionFactor = 0.1 // applied once when any predicate is present
	joinRowMultiplier     = 2   // applied per joined table
	groupRowDivisor       = 200 // applied when a grouped aggregate is present
)

// Report is the advisory output of the cost/warning stage.
type Report struct {
	Warnings      []string `json:"warnings"`
	EstimatedRows int64    `json:"estimated_rows"`
}

// Analyzer derives warnings and a rough row estimate from a QueryPlan's
// structured fields. It consults the schema catalog only and never executes
// anything; it also never fails — anything it cannot characterize simply
// yields a conservative estimate and no warning for that rule.
type Analyzer struct {
	catalog schema.Catalog
}

func NewAnalyzer(catalog schema.Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// Analyze inspects the plan and intent. Pure function; safe for concurrent
// use.
func (a *Analyzer) Analyze(plan *nlquery.QueryPlan, intent *nlquery.QueryIntent) Report {
	report := Report{Warnings: []string{}, EstimatedRows: 1}
	if plan == nil {
		return report
	}

	a.collectWarnings(plan, intent, &report)
	report.EstimatedRows = a.estimateRows(plan)
	return report
}

func (a *Analyzer) collectWarnings(plan *nlquery.QueryPlan, intent *nlquery.QueryIntent, report *Report) {
	warn := func(format string, args ...interface{}) {
		report.Warnings = append(report.Warnings, fmt.Sprintf(format, args...))
	}

	// The injected ownership predicate counts as a WHERE clause here: a
	// scoped caller's query is filtered, even if they never typed a filter.
	if !plan.HasFilter() {
		warn("query has no WHERE clause and will scan the whole table")
	}

	if !plan.Aggregate && plan.Limit == 0 {
		warn("non-aggregate query has no LIMIT; result size is unbounded")
	}

	if len(plan.AffectedTables) >= 3 && !plan.HasExplicitFilter() {
		warn("query joins %d tables without any filter", len(plan.AffectedTables))
	}

	for _, p := range plan.Predicates {
		if p.Wildcard {
			warn("pattern filter on %s uses a leading wildcard and cannot use an index", p.Column)
		}
	}

	if plan.Aggregate {
		if t, ok := a.catalog.Table(plan.PrimaryTable); ok && !t.Small {
			warn("aggregation over %s (estimated %d rows) may be expensive", t.Name, t.SizeEstimate)
		}
	}

	if tr := intentTimeRange(intent); tr != nil {
		if !a.catalog.IsTimestampColumn(tr.Column.Table, tr.Column.Column) {
			warn("time range filter targets %s which is not a recognized timestamp column", tr.Column)
		}
	}

	if len(plan.GroupByTables) > 1 {
		warn("GROUP BY spans multiple tables (%d) and may force a large intermediate result", len(plan.GroupByTables))
	}

	if plan.NestedSelects > 0 {
		warn("query contains %d nested SELECT(s)", plan.NestedSelects)
	}

	for _, p := range plan.Predicates {
		if p.Ownership {
			continue
		}
		if a.catalog.HasTable(p.Column.Table) && !a.catalog.HasIndexOn(p.Column.Table, p.Column.Column) {
			warn("filter on %s is not covered by a declared index", p.Column)
		}
	}
}

// estimateRows is a deterministic formula over the plan shape, not a
// statistical guarantee. Pure aggregates without GROUP BY return exactly 1;
// everything else starts from the catalog size estimate and never drops
// below 1.
func (a *Analyzer) estimateRows(plan *nlquery.QueryPlan) int64 {
	if plan.Aggregate && len(plan.GroupByTables) == 0 {
		return 1
	}

	rows := float64(a.catalog.SizeEstimate(plan.PrimaryTable))

	for i := 0; i < plan.JoinCount; i++ {
		rows *= joinRowMultiplier
	}
	if plan.HasFilter() {
		rows *= filterReductionFactor
	}
	if plan.Aggregate && len(plan.GroupByTables) > 0 {
		rows /= groupRowDivisor
	}

	estimate := int64(rows)
	if plan.Limit > 0 && int64(plan.Limit) < estimate {
		estimate = int64(plan.Limit)
	}
	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

func intentTimeRange(intent *nlquery.QueryIntent) *nlquery.TimeRange {
	if intent == nil {
		return nil
	}
	return intent.TimeRange
}
