package analyzer

import (
	"strings"
	"testing"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(schema.Default())
}

func hasWarning(report Report, fragment string) bool {
	for _, w := range report.Warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}

func TestAnalyzeNoFilterNoLimitCoFire(t *testing.T) {
	a := newTestAnalyzer()

	plan := &nlquery.QueryPlan{
		PrimaryTable:   "accounts",
		AffectedTables: []string{"accounts"},
	}

	report := a.Analyze(plan, &nlquery.QueryIntent{Category: nlquery.CategoryAccount, Tables: []string{"accounts"}})

	if !hasWarning(report, "no WHERE") {
		t.Errorf("missing no-WHERE warning: %v", report.Warnings)
	}
	if !hasWarning(report, "no LIMIT") {
		t.Errorf("missing no-LIMIT warning: %v", report.Warnings)
	}
}

func TestAnalyzeOwnershipPredicateCountsAsFilter(t *testing.T) {
	a := newTestAnalyzer()

	plan := &nlquery.QueryPlan{
		PrimaryTable:   "contacts",
		AffectedTables: []string{"contacts"},
		Aggregate:      true,
		Predicates: []nlquery.Predicate{
			{Column: nlquery.ColumnRef{Table: "contacts", Column: "owner_id"}, Kind: nlquery.FilterEquals, Ownership: true},
		},
	}

	report := a.Analyze(plan, &nlquery.QueryIntent{Category: nlquery.CategoryContact, Tables: []string{"contacts"}})

	if hasWarning(report, "no WHERE") {
		t.Errorf("ownership scope should count as a WHERE clause: %v", report.Warnings)
	}
	if report.EstimatedRows != 1 {
		t.Errorf("estimated rows = %d, want 1 for pure aggregate", report.EstimatedRows)
	}
}

func TestAnalyzePureAggregateAlwaysOne(t *testing.T) {
	a := newTestAnalyzer()

	plan := &nlquery.QueryPlan{
		PrimaryTable:   "sales_activities",
		AffectedTables: []string{"sales_activities", "leads", "users"},
		JoinCount:      2,
		Aggregate:      true,
	}

	report := a.Analyze(plan, &nlquery.QueryIntent{Category: nlquery.CategoryPerformance, Tables: plan.AffectedTables})
	if report.EstimatedRows != 1 {
		t.Errorf("estimated rows = %d, want exactly 1", report.EstimatedRows)
	}
}

func TestAnalyzeRowEstimateFormula(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name string
		plan nlquery.QueryPlan
		want int64
	}{
		{
			name: "bare scan uses catalog size",
			plan: nlquery.QueryPlan{PrimaryTable: "accounts", AffectedTables: []string{"accounts"}},
			want: 5000,
		},
		{
			name: "filter applies reduction factor",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts"},
				Predicates: []nlquery.Predicate{
					{Column: nlquery.ColumnRef{Table: "accounts", Column: "status"}, Kind: nlquery.FilterEquals},
				},
			},
			want: 500,
		},
		{
			name: "join applies multiplier",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts", "contacts"},
				JoinCount:      1,
			},
			want: 10000,
		},
		{
			name: "limit caps the estimate",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts"},
				Limit:          25,
			},
			want: 25,
		},
		{
			name: "unknown table defaults conservatively",
			plan: nlquery.QueryPlan{PrimaryTable: "mystery", AffectedTables: []string{"mystery"}},
			want: 100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := a.Analyze(&tt.plan, nil)
			if report.EstimatedRows != tt.want {
				t.Errorf("estimated rows = %d, want %d", report.EstimatedRows, tt.want)
			}
		})
	}
}

func TestAnalyzeEstimateNeverBelowOne(t *testing.T) {
	a := newTestAnalyzer()

	plan := &nlquery.QueryPlan{
		PrimaryTable:   "users", // size 50
		AffectedTables: []string{"users"},
		Aggregate:      true,
		GroupByTables:  []string{"users"},
		Predicates: []nlquery.Predicate{
			{Column: nlquery.ColumnRef{Table: "users", Column: "role"}, Kind: nlquery.FilterEquals},
		},
	}

	// 50 * 0.1 / 200 rounds to zero; the estimator must floor at 1.
	report := a.Analyze(plan, nil)
	if report.EstimatedRows != 1 {
		t.Errorf("estimated rows = %d, want floor of 1", report.EstimatedRows)
	}
}

func TestAnalyzeWarningTriggers(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name     string
		plan     nlquery.QueryPlan
		intent   *nlquery.QueryIntent
		fragment string
	}{
		{
			name: "three joins without filter",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts", "contacts", "leads"},
				JoinCount:      2,
			},
			fragment: "joins 3 tables",
		},
		{
			name: "leading wildcard",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts"},
				Predicates: []nlquery.Predicate{
					{Column: nlquery.ColumnRef{Table: "accounts", Column: "name"}, Kind: nlquery.FilterPattern, Wildcard: true},
				},
			},
			fragment: "leading wildcard",
		},
		{
			name: "aggregate over large table",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "sales_activities",
				AffectedTables: []string{"sales_activities"},
				Aggregate:      true,
			},
			fragment: "may be expensive",
		},
		{
			name: "multi-table group by",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts", "leads"},
				Aggregate:      true,
				GroupByTables:  []string{"accounts", "leads"},
			},
			fragment: "GROUP BY spans multiple tables",
		},
		{
			name: "nested select",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "leads",
				AffectedTables: []string{"leads"},
				NestedSelects:  1,
			},
			fragment: "nested SELECT",
		},
		{
			name: "unindexed filter column",
			plan: nlquery.QueryPlan{
				PrimaryTable:   "accounts",
				AffectedTables: []string{"accounts"},
				Predicates: []nlquery.Predicate{
					{Column: nlquery.ColumnRef{Table: "accounts", Column: "industry"}, Kind: nlquery.FilterEquals},
				},
			},
			fragment: "not covered by a declared index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := tt.intent
			if intent == nil {
				intent = &nlquery.QueryIntent{Tables: tt.plan.AffectedTables}
			}
			report := a.Analyze(&tt.plan, intent)
			if !hasWarning(report, tt.fragment) {
				t.Errorf("warnings %v missing %q", report.Warnings, tt.fragment)
			}
		})
	}
}

func TestAnalyzeTimeRangeOnNonTimestampColumn(t *testing.T) {
	a := newTestAnalyzer()

	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryAccount,
		Tables:   []string{"accounts"},
		TimeRange: &nlquery.TimeRange{
			Column: nlquery.ColumnRef{Table: "accounts", Column: "engagement_score"},
		},
	}
	plan := &nlquery.QueryPlan{
		PrimaryTable:   "accounts",
		AffectedTables: []string{"accounts"},
		Predicates: []nlquery.Predicate{
			{Column: nlquery.ColumnRef{Table: "accounts", Column: "engagement_score"}, Kind: nlquery.FilterRange},
		},
	}

	report := a.Analyze(plan, intent)
	if !hasWarning(report, "not a recognized timestamp column") {
		t.Errorf("warnings %v missing timestamp warning", report.Warnings)
	}
}

func TestAnalyzeNeverFails(t *testing.T) {
	a := newTestAnalyzer()

	// Nil plan and nil intent must not panic and must stay conservative.
	report := a.Analyze(nil, nil)
	if report.EstimatedRows < 1 {
		t.Errorf("estimated rows = %d, want >= 1", report.EstimatedRows)
	}
}

func TestEstimateComplexityBuckets(t *testing.T) {
	tests := []struct {
		name   string
		intent *nlquery.QueryIntent
		want   Complexity
	}{
		{
			name:   "nil intent is simple",
			intent: nil,
			want:   ComplexitySimple,
		},
		{
			name: "single table lookup is simple",
			intent: &nlquery.QueryIntent{
				Category: nlquery.CategoryContact,
				Tables:   []string{"contacts"},
			},
			want: ComplexitySimple,
		},
		{
			name: "aggregate with time range is moderate",
			intent: &nlquery.QueryIntent{
				Category:    nlquery.CategoryContact,
				Tables:      []string{"contacts"},
				Aggregation: &nlquery.Aggregation{Type: nlquery.AggCount},
				TimeRange:   &nlquery.TimeRange{},
			},
			want: ComplexityModerate,
		},
		{
			name: "grouped multi-table prediction is complex",
			intent: &nlquery.QueryIntent{
				Category:    nlquery.CategoryPrediction,
				Tables:      []string{"leads", "contacts", "accounts"},
				Aggregation: &nlquery.Aggregation{Type: nlquery.AggCount},
				GroupBy:     []nlquery.ColumnRef{{Table: "accounts", Column: "region"}},
			},
			want: ComplexityComplex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateComplexity(tt.intent); got != tt.want {
				t.Errorf("EstimateComplexity = %s, want %s", got, tt.want)
			}
		})
	}
}
