package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/analyzer"
	"sales-crm-be/pkg/nlquery/builder"
	"sales-crm-be/pkg/nlquery/classifier"
	"sales-crm-be/pkg/nlquery/schema"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestInsightService() IInsightService {
	catalog := schema.Default()
	return NewInsightService(
		classifier.NewClassifier(catalog, nil, nil),
		builder.NewBuilder(catalog, nil),
		analyzer.NewAnalyzer(catalog),
		nopLogger{},
	)
}

func repCtx() *nlquery.UserContext {
	return nlquery.NewUserContext(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"), nil, "user")
}

func TestQueryExplainScopesSQLForRep(t *testing.T) {
	s := newTestInsightService()

	res, err := s.QueryExplain(context.Background(), repCtx(), "how many contacts do I have")
	if err != nil {
		t.Fatalf("QueryExplain error: %v", err)
	}

	if !strings.HasPrefix(res.SQL, "SELECT") {
		t.Errorf("unexpected SQL: %s", res.SQL)
	}
	if !strings.Contains(res.SQL, "owner_id = $") {
		t.Errorf("SQL is not scoped to the caller: %s", res.SQL)
	}
	if len(res.AffectedTables) == 0 {
		t.Error("affected tables should not be empty")
	}
	if res.Explanation == "" {
		t.Error("explanation should not be empty")
	}
}

func TestQueryExplainAdminIsUnscoped(t *testing.T) {
	s := newTestInsightService()

	admin := nlquery.NewUserContext(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"), nil, "admin")
	res, err := s.QueryExplain(context.Background(), admin, "how many contacts are there")
	if err != nil {
		t.Fatalf("QueryExplain error: %v", err)
	}

	if strings.Contains(res.SQL, "owner_id = $") {
		t.Errorf("admin SQL should not carry ownership scoping: %s", res.SQL)
	}
}

func TestQueryExplainUnboundedListingWarnings(t *testing.T) {
	s := newTestInsightService()

	// An admin listing with no filter and no limit is a full scan, not an
	// aggregate: both warnings fire and the row estimate stays table-sized.
	admin := nlquery.NewUserContext(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"), nil, "admin")
	res, err := s.QueryExplain(context.Background(), admin, "show all accounts")
	if err != nil {
		t.Fatalf("QueryExplain error: %v", err)
	}

	if strings.Contains(res.SQL, "COUNT(") {
		t.Errorf("plain listing should not aggregate: %s", res.SQL)
	}
	var noWhere, noLimit bool
	for _, w := range res.Warnings {
		if strings.Contains(w, "no WHERE") {
			noWhere = true
		}
		if strings.Contains(w, "no LIMIT") {
			noLimit = true
		}
	}
	if !noWhere || !noLimit {
		t.Errorf("warnings = %v, want full-scan and unbounded-result warnings", res.Warnings)
	}
	if res.EstimatedRows <= 1 {
		t.Errorf("estimated rows = %d, want a table-sized estimate", res.EstimatedRows)
	}
}

func TestQueryExplainEmptyQuestion(t *testing.T) {
	s := newTestInsightService()

	if _, err := s.QueryExplain(context.Background(), repCtx(), "   "); err == nil {
		t.Fatal("expected error for blank question")
	}
}

func TestIntentPreviewReportsComplexity(t *testing.T) {
	s := newTestInsightService()

	res, err := s.IntentPreview(context.Background(), repCtx(), "total estimated value of open leads by region")
	if err != nil {
		t.Fatalf("IntentPreview error: %v", err)
	}

	switch res.EstimatedComplexity {
	case "SIMPLE", "MODERATE", "COMPLEX":
	default:
		t.Errorf("unexpected complexity %q", res.EstimatedComplexity)
	}
	if res.Intent.Category == "" {
		t.Error("intent category should not be empty")
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		t.Errorf("confidence %v out of range", res.Confidence)
	}
}

func TestIntentPreviewAnonymous(t *testing.T) {
	s := newTestInsightService()

	res, err := s.IntentPreview(context.Background(), nlquery.AnonymousContext(), "list accounts in the west region")
	if err != nil {
		t.Fatalf("IntentPreview error: %v", err)
	}
	if res.Intent.Category == "" {
		t.Error("intent category should not be empty")
	}
}
