package classifier

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
	"sales-crm-be/pkg/textclass"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "[test] ", log.LstdFlags)
}

func newTestClassifier() *Classifier {
	c := NewClassifier(schema.Default(), nil, testLogger())
	// Frozen clock keeps time-range assertions stable
	c.now = func() time.Time {
		return time.Date(2025, time.June, 18, 15, 0, 0, 0, time.UTC)
	}
	return c
}

func userContext(role string) *nlquery.UserContext {
	return nlquery.NewUserContext(uuid.New(), nil, role)
}

func TestClassifyEmptyQuestion(t *testing.T) {
	c := newTestClassifier()

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := c.Classify(context.Background(), q, nil)
		if err == nil {
			t.Errorf("Classify(%q) should fail", q)
			continue
		}
		if !nlquery.IsClassificationError(err) {
			t.Errorf("Classify(%q) error = %v, want ClassificationError", q, err)
		}
	}
}

func TestClassifyAlwaysProducesTables(t *testing.T) {
	c := newTestClassifier()

	questions := []string{
		"How many contacts do I have?",
		"show me all accounts",
		"gibberish zzz qqq",
		"what is the average quotation total this month",
		"compare leads by source",
		"which leads are likely to close",
		"overdue tasks for this week",
	}

	for _, q := range questions {
		res, err := c.Classify(context.Background(), q, userContext("user"))
		if err != nil {
			t.Errorf("Classify(%q) error: %v", q, err)
			continue
		}
		if len(res.Intent.Tables) == 0 {
			t.Errorf("Classify(%q) produced no tables", q)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("Classify(%q) confidence %v out of range", q, res.Confidence)
		}
		if res.Explanation == "" {
			t.Errorf("Classify(%q) has empty explanation", q)
		}
	}
}

func TestClassifyCategories(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		question     string
		wantCategory nlquery.Category
		wantTable    string
	}{
		{"list my contacts", nlquery.CategoryContact, "contacts"},
		{"show accounts with low engagement", nlquery.CategoryAccount, "accounts"},
		{"open leads in the pipeline", nlquery.CategoryLead, "leads"},
		{"quotations sent last month", nlquery.CategoryQuotation, "quotations"},
		{"show my quotations", nlquery.CategoryQuotation, "quotations"},
		{"which quotations expire this week", nlquery.CategoryQuotation, "quotations"},
		{"how close is the team to quota", nlquery.CategoryPerformance, "users"},
		{"calls scheduled today", nlquery.CategoryActivity, "sales_activities"},
		{"compare accounts by region", nlquery.CategoryComparison, "accounts"},
		{"lead volume trend over time", nlquery.CategoryTrend, "leads"},
		{"which leads are likely to convert", nlquery.CategoryPrediction, "leads"},
		{"rep performance this quarter", nlquery.CategoryPerformance, "users"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.question, userContext("user"))
			if err != nil {
				t.Fatalf("Classify error: %v", err)
			}
			if res.Intent.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", res.Intent.Category, tt.wantCategory)
			}
			if !res.Intent.HasTable(tt.wantTable) {
				t.Errorf("tables = %v, want to include %s", res.Intent.Tables, tt.wantTable)
			}
		})
	}
}

func TestClassifyContactCountScenario(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), "How many contacts do I have?", userContext("user"))
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if res.Intent.Category != nlquery.CategoryContact {
		t.Errorf("category = %s, want %s", res.Intent.Category, nlquery.CategoryContact)
	}
	if res.Intent.Aggregation == nil || res.Intent.Aggregation.Type != nlquery.AggCount {
		t.Errorf("aggregation = %+v, want count", res.Intent.Aggregation)
	}
	// Unprivileged callers get no ownership filter from the classifier;
	// the builder injects the scope predicate instead.
	if len(res.Intent.Filters) != 0 {
		t.Errorf("filters = %v, want none", res.Intent.Filters)
	}
}

func TestClassifyOwnershipFilterForPrivileged(t *testing.T) {
	c := newTestClassifier()
	admin := userContext("admin")

	res, err := c.Classify(context.Background(), "show my leads", admin)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	found := false
	for _, f := range res.Intent.Filters {
		if f.Column.Column == "assigned_to" && f.Value == admin.OwnerId().String() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ownership filter for privileged caller, got %v", res.Intent.Filters)
	}
}

func TestClassifyAggregationVerbs(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		question string
		want     nlquery.AggregationType
	}{
		{"how many accounts are active", nlquery.AggCount},
		{"total number of leads", nlquery.AggCount},
		{"sum of quotation amounts", nlquery.AggSum},
		{"average quotation value", nlquery.AggAvg},
		{"highest quote amount", nlquery.AggMax},
		{"lowest lead value", nlquery.AggMin},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.question, nil)
			if err != nil {
				t.Fatalf("Classify error: %v", err)
			}
			if res.Intent.Aggregation == nil {
				t.Fatal("expected aggregation")
			}
			if res.Intent.Aggregation.Type != tt.want {
				t.Errorf("aggregation = %s, want %s", res.Intent.Aggregation.Type, tt.want)
			}
		})
	}
}

func TestClassifyNoAggregationForPlainListings(t *testing.T) {
	c := newTestClassifier()

	// Aggregation verbs must match whole words: "count" inside "accounts"
	// or "discount" is not a count request.
	tests := []struct {
		question     string
		wantCategory nlquery.Category
	}{
		{"show all accounts", nlquery.CategoryAccount},
		{"which quotations have a discount", nlquery.CategoryQuotation},
		{"list open deals", nlquery.CategoryLead},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.question, userContext("admin"))
			if err != nil {
				t.Fatalf("Classify error: %v", err)
			}
			if res.Intent.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", res.Intent.Category, tt.wantCategory)
			}
			if res.Intent.Aggregation != nil {
				t.Errorf("aggregation = %+v, want none", res.Intent.Aggregation)
			}
		})
	}
}

func TestClassifyTimeRanges(t *testing.T) {
	c := newTestClassifier()
	// Frozen clock: Wednesday 2025-06-18 15:00 UTC

	tests := []struct {
		question  string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			"leads created today",
			time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC),
		},
		{
			"leads created yesterday",
			time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			"leads this week",
			time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC),
		},
		{
			"leads this month",
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC),
		},
		{
			"leads from the last 30 days",
			time.Date(2025, 5, 19, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.question, nil)
			if err != nil {
				t.Fatalf("Classify error: %v", err)
			}
			tr := res.Intent.TimeRange
			if tr == nil {
				t.Fatal("expected a time range")
			}
			if !tr.Start.Equal(tt.wantStart) || !tr.End.Equal(tt.wantEnd) {
				t.Errorf("range = [%s, %s], want [%s, %s]", tr.Start, tr.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestClassifyGroupByAndLimit(t *testing.T) {
	c := newTestClassifier()

	res, err := c.Classify(context.Background(), "top 5 accounts by region", nil)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if res.Intent.Limit != 5 {
		t.Errorf("limit = %d, want 5", res.Intent.Limit)
	}
	if len(res.Intent.GroupBy) != 1 || res.Intent.GroupBy[0].Column != "region" {
		t.Errorf("group by = %v, want accounts.region", res.Intent.GroupBy)
	}
	// A breakdown without an explicit verb defaults to count
	if res.Intent.Aggregation == nil || res.Intent.Aggregation.Type != nlquery.AggCount {
		t.Errorf("aggregation = %+v, want implicit count", res.Intent.Aggregation)
	}
}

func TestClassifyTableFilterInvariant(t *testing.T) {
	c := newTestClassifier()

	questions := []string{
		"How many contacts do I have?",
		"show accounts with low engagement",
		"compare quotations by region",
		"my open leads this month",
	}

	for _, q := range questions {
		res, err := c.Classify(context.Background(), q, userContext("admin"))
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", q, err)
		}
		for _, ref := range res.Intent.ReferencedTables() {
			if !res.Intent.HasTable(ref) {
				t.Errorf("Classify(%q): referenced table %q missing from %v", q, ref, res.Intent.Tables)
			}
		}
	}
}

// --- Provider integration ---

type stubProvider struct {
	pred *textclass.Prediction
	err  error
}

func (s *stubProvider) ClassifyIntent(ctx context.Context, question, role string) (*textclass.Prediction, error) {
	return s.pred, s.err
}

func TestClassifyUsesProviderWhenAvailable(t *testing.T) {
	c := NewClassifier(schema.Default(), &stubProvider{
		pred: &textclass.Prediction{Category: "TREND_QUERY", Confidence: 0.88},
	}, testLogger())

	res, err := c.Classify(context.Background(), "anything at all", nil)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if res.Intent.Category != nlquery.CategoryTrend {
		t.Errorf("category = %s, want provider's TREND_QUERY", res.Intent.Category)
	}
}

func TestClassifyFallsBackOnProviderFailure(t *testing.T) {
	c := NewClassifier(schema.Default(), &stubProvider{err: errors.New("timeout")}, testLogger())

	res, err := c.Classify(context.Background(), "list my contacts", nil)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if res.Intent.Category != nlquery.CategoryContact {
		t.Errorf("category = %s, want rule fallback CONTACT_QUERY", res.Intent.Category)
	}
}

func TestClassifyFallsBackOnUnknownProviderCategory(t *testing.T) {
	c := NewClassifier(schema.Default(), &stubProvider{
		pred: &textclass.Prediction{Category: "SOMETHING_ELSE", Confidence: 0.99},
	}, testLogger())

	res, err := c.Classify(context.Background(), "list my contacts", nil)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if res.Intent.Category != nlquery.CategoryContact {
		t.Errorf("category = %s, want rule fallback CONTACT_QUERY", res.Intent.Category)
	}
}
