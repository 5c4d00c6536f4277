package builder

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
)

func newTestBuilder() *Builder {
	return NewBuilder(schema.Default(), nil)
}

func userCtx(role string) *nlquery.UserContext {
	return nlquery.NewUserContext(uuid.MustParse("11111111-2222-3333-4444-555555555555"), nil, role)
}

func contactCountIntent() *nlquery.QueryIntent {
	return &nlquery.QueryIntent{
		Category: nlquery.CategoryContact,
		Tables:   []string{"contacts"},
		Aggregation: &nlquery.Aggregation{
			Type:   nlquery.AggCount,
			Column: nlquery.ColumnRef{Table: "contacts", Column: "id"},
		},
	}
}

func TestBuildOwnershipScopingForUnprivileged(t *testing.T) {
	b := newTestBuilder()
	ctx := userCtx("user")

	plan, err := b.Build(contactCountIntent(), ctx)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if !strings.Contains(plan.SQL, "contacts.owner_id = $") {
		t.Errorf("SQL missing ownership predicate: %s", plan.SQL)
	}

	found := false
	for _, arg := range plan.Args {
		if id, ok := arg.(uuid.UUID); ok && id == ctx.OwnerId() {
			found = true
		}
	}
	if !found {
		t.Errorf("args %v do not bind the caller id", plan.Args)
	}

	ownership := false
	for _, p := range plan.Predicates {
		if p.Ownership {
			ownership = true
		}
	}
	if !ownership {
		t.Error("plan predicates missing ownership marker")
	}
}

func TestBuildNoOwnershipForAdmin(t *testing.T) {
	b := newTestBuilder()

	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryAccount,
		Tables:   []string{"accounts"},
	}
	low, err := nlquery.NewRangeFilter(schema.Default(), nlquery.ColumnRef{Table: "accounts", Column: "engagement_score"}, "", "40")
	if err != nil {
		t.Fatal(err)
	}
	intent.Filters = []nlquery.Filter{low}

	plan, err := b.Build(intent, userCtx("admin"))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(plan.AffectedTables) != 1 || plan.AffectedTables[0] != "accounts" {
		t.Errorf("affected tables = %v, want [accounts]", plan.AffectedTables)
	}
	if strings.Contains(plan.SQL, "owner_id") {
		t.Errorf("admin plan must not carry an ownership predicate: %s", plan.SQL)
	}
	for _, p := range plan.Predicates {
		if p.Ownership {
			t.Error("admin plan has ownership predicate")
		}
	}
}

func TestBuildEmployeeIdPreferredForScoping(t *testing.T) {
	b := newTestBuilder()

	empId := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	ctx := nlquery.NewUserContext(uuid.New(), &empId, "user")

	plan, err := b.Build(contactCountIntent(), ctx)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	found := false
	for _, arg := range plan.Args {
		if id, ok := arg.(uuid.UUID); ok && id == empId {
			found = true
		}
	}
	if !found {
		t.Errorf("ownership should bind employee id, args = %v", plan.Args)
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := newTestBuilder()
	ctx := userCtx("user")

	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryLead,
		Tables:   []string{"leads", "contacts"},
		TimeRange: &nlquery.TimeRange{
			Column: nlquery.ColumnRef{Table: "leads", Column: "created_at"},
			Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		Limit: 25,
	}

	first, err := b.Build(intent, ctx)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	second, err := b.Build(intent, ctx)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if first.SQL != second.SQL {
		t.Errorf("SQL not byte-identical:\n%s\n%s", first.SQL, second.SQL)
	}
}

func TestBuildJoinOrderFollowsCatalog(t *testing.T) {
	b := newTestBuilder()

	// Tables given out of declaration order; output must reorder them.
	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryQuotation,
		Tables:   []string{"quotation_products", "quotations", "accounts"},
	}

	plan, err := b.Build(intent, userCtx("admin"))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	want := []string{"accounts", "quotations", "quotation_products"}
	if len(plan.AffectedTables) != len(want) {
		t.Fatalf("affected tables = %v", plan.AffectedTables)
	}
	for i, tbl := range want {
		if plan.AffectedTables[i] != tbl {
			t.Errorf("affected[%d] = %s, want %s", i, plan.AffectedTables[i], tbl)
		}
	}

	if !strings.Contains(plan.SQL, "FROM accounts JOIN quotations ON quotations.account_id = quotations.id") &&
		!strings.Contains(plan.SQL, "JOIN quotations ON") {
		t.Errorf("SQL joins missing: %s", plan.SQL)
	}
	if plan.JoinCount != 2 {
		t.Errorf("join count = %d, want 2", plan.JoinCount)
	}
}

func TestBuildRejectsFilterOnUnlistedTable(t *testing.T) {
	b := newTestBuilder()

	intent := contactCountIntent()
	intent.Filters = []nlquery.Filter{{
		Column: nlquery.ColumnRef{Table: "leads", Column: "status"},
		Kind:   nlquery.FilterEquals,
		Value:  "open",
	}}

	_, err := b.Build(intent, userCtx("admin"))
	if err == nil {
		t.Fatal("expected BuildError")
	}
	be, ok := nlquery.AsBuildError(err)
	if !ok {
		t.Fatalf("error = %v, want BuildError", err)
	}
	if be.Intent == nil {
		t.Error("BuildError should carry the offending intent")
	}
}

func TestBuildRejectsUnknownColumn(t *testing.T) {
	b := newTestBuilder()

	// A column absent from the catalog must never reach the SQL, even if
	// an attacker smuggles it into the intent.
	intent := contactCountIntent()
	intent.Filters = []nlquery.Filter{{
		Column: nlquery.ColumnRef{Table: "contacts", Column: "password; DROP TABLE contacts"},
		Kind:   nlquery.FilterEquals,
		Value:  "x",
	}}

	plan, err := b.Build(intent, userCtx("admin"))
	if err == nil {
		t.Fatalf("expected BuildError, got plan %q", plan.SQL)
	}
	if _, ok := nlquery.AsBuildError(err); !ok {
		t.Fatalf("error = %v, want BuildError", err)
	}
}

func TestBuildLogsRejections(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(schema.Default(), log.New(&buf, "", 0))

	intent := contactCountIntent()
	intent.Filters = []nlquery.Filter{{
		Column: nlquery.ColumnRef{Table: "contacts", Column: "no_such_column"},
		Kind:   nlquery.FilterEquals,
		Value:  "x",
	}}

	if _, err := b.Build(intent, userCtx("admin")); err == nil {
		t.Fatal("expected BuildError")
	}
	if !strings.Contains(buf.String(), "no_such_column") {
		t.Errorf("rejection not logged, got %q", buf.String())
	}
}

func TestBuildRejectsEmptyTables(t *testing.T) {
	b := newTestBuilder()

	_, err := b.Build(&nlquery.QueryIntent{Category: nlquery.CategoryAccount}, userCtx("admin"))
	if err == nil {
		t.Fatal("expected BuildError for empty table list")
	}
}

func TestBuildExplanationOrder(t *testing.T) {
	b := newTestBuilder()

	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryQuotation,
		Tables:   []string{"quotations"},
		Aggregation: &nlquery.Aggregation{
			Type:   nlquery.AggSum,
			Column: nlquery.ColumnRef{Table: "quotations", Column: "total_amount"},
		},
		TimeRange: &nlquery.TimeRange{
			Column: nlquery.ColumnRef{Table: "quotations", Column: "created_at"},
			Start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	status, err := nlquery.NewEqualsFilter(schema.Default(), nlquery.ColumnRef{Table: "quotations", Column: "status"}, "sent")
	if err != nil {
		t.Fatal(err)
	}
	intent.Filters = []nlquery.Filter{status}

	plan, err := b.Build(intent, userCtx("user"))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	// Explanation mentions tables, then filters, then aggregation, then time range
	exp := plan.Explanation
	idxTables := strings.Index(exp, "quotations")
	idxFilter := strings.Index(exp, "status")
	idxAgg := strings.Index(exp, "sum")
	idxTime := strings.Index(exp, "2025-01-01")
	if idxTables < 0 || idxFilter < 0 || idxAgg < 0 || idxTime < 0 {
		t.Fatalf("explanation incomplete: %s", exp)
	}
	if !(idxTables < idxFilter && idxFilter < idxAgg && idxAgg < idxTime) {
		t.Errorf("explanation order wrong: %s", exp)
	}
}

func TestBuildPredictionEmitsNestedSelect(t *testing.T) {
	b := newTestBuilder()

	intent := &nlquery.QueryIntent{
		Category: nlquery.CategoryPrediction,
		Tables:   []string{"leads"},
	}

	plan, err := b.Build(intent, userCtx("admin"))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if plan.NestedSelects != 1 {
		t.Errorf("nested selects = %d, want 1", plan.NestedSelects)
	}
	if !strings.Contains(plan.SQL, "(SELECT AVG(estimated_value) FROM leads)") {
		t.Errorf("SQL missing nested select: %s", plan.SQL)
	}
}
