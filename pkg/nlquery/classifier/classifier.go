package classifier

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
	"sales-crm-be/pkg/textclass"
)

// Classifier maps a free-text question plus caller context into a
// structured QueryIntent. It is a pure function of its inputs; the optional
// external text-classification provider is consulted first and any failure
// there falls back to the local rule engine.
type Classifier struct {
	catalog  schema.Catalog
	provider textclass.Provider
	logger   *log.Logger
	now      func() time.Time
}

// NewClassifier creates a classifier over the given catalog. provider may
// be nil to run on local rules only.
func NewClassifier(catalog schema.Catalog, provider textclass.Provider, logger *log.Logger) *Classifier {
	if logger == nil {
		logger = log.Default()
	}
	return &Classifier{
		catalog:  catalog,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Classify produces a ClassificationResult for the question. The only hard
// failure is an empty/whitespace question (ErrEmptyQuestion); anything else
// degrades to a low-confidence best-effort intent.
func (c *Classifier) Classify(ctx context.Context, question string, userCtx *nlquery.UserContext) (*nlquery.ClassificationResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, nlquery.ErrEmptyQuestion
	}

	lower := strings.ToLower(question)

	// 1. Category: external provider first, rule engine as fallback
	category, confidence, matched := c.resolveCategory(ctx, lower, userCtx)

	// 2. Base tables implied by the category
	intent := nlquery.QueryIntent{
		Category: category,
		Tables:   c.tablesForCategory(category, lower),
	}
	primary := c.primaryTable(intent.Tables)

	var notes []string
	if matched != "" {
		notes = append(notes, fmt.Sprintf("matched %q", matched))
	}

	// 3. Aggregation verbs
	if agg := c.detectAggregation(lower, primary); agg != nil {
		intent.Aggregation = agg
		confidence += 0.05
		notes = append(notes, fmt.Sprintf("aggregation: %s(%s)", agg.Type, agg.Column))
	}

	// 4. Time expressions
	if tr := c.detectTimeRange(lower, primary); tr != nil {
		intent.TimeRange = tr
		confidence += 0.05
		notes = append(notes, fmt.Sprintf("time range: %s to %s",
			tr.Start.Format("2006-01-02"), tr.End.Format("2006-01-02")))
	}

	// 5. Entity qualifiers
	filters := c.detectFilters(lower, question, primary, &intent, userCtx)
	if len(filters) > 0 {
		intent.Filters = filters
		confidence += 0.05
		for _, f := range filters {
			notes = append(notes, describeFilter(f))
		}
	}

	// 6. Group-by qualifiers ("by region", "per rep")
	if groups := c.detectGroupBy(lower, primary, &intent); len(groups) > 0 {
		intent.GroupBy = groups
		if intent.Aggregation == nil {
			// A breakdown question without an explicit verb is a count
			intent.Aggregation = &nlquery.Aggregation{
				Type:   nlquery.AggCount,
				Column: nlquery.ColumnRef{Table: primary, Column: "id"},
			}
		}
		for _, g := range groups {
			notes = append(notes, fmt.Sprintf("grouped by %s", g))
		}
	}

	// 7. Explicit result limit ("top 5", "latest 10")
	if limit := detectLimit(lower); limit > 0 {
		intent.Limit = limit
		notes = append(notes, fmt.Sprintf("limit %d", limit))
	}

	// 8. Keep the table/filter invariant by construction
	for _, t := range intent.ReferencedTables() {
		intent.AddTable(t)
	}

	if confidence > 0.95 {
		confidence = 0.95
	}
	if confidence < 0 {
		confidence = 0
	}

	explanation := fmt.Sprintf("Classified as %s", category)
	if len(notes) > 0 {
		explanation += " (" + strings.Join(notes, "; ") + ")"
	}

	return &nlquery.ClassificationResult{
		Intent:      intent,
		Confidence:  confidence,
		Explanation: explanation,
	}, nil
}

// resolveCategory asks the external provider when configured, validating
// its answer against the closed category set, and falls back to keyword
// scoring on any failure.
func (c *Classifier) resolveCategory(ctx context.Context, lower string, userCtx *nlquery.UserContext) (nlquery.Category, float64, string) {
	if c.provider != nil {
		role := ""
		if userCtx != nil {
			role = userCtx.Role
		}
		pred, err := c.provider.ClassifyIntent(ctx, lower, role)
		if err != nil {
			c.logger.Printf("[CLASSIFIER] provider failed, falling back to rules: %v", err)
		} else if cat, ok := ParseCategory(pred.Category); ok {
			return cat, pred.Confidence, "provider"
		} else {
			c.logger.Printf("[CLASSIFIER] provider returned unknown category %q, falling back to rules", pred.Category)
		}
	}
	return scoreCategories(lower)
}

// ParseCategory maps a string onto the closed category set.
func ParseCategory(s string) (nlquery.Category, bool) {
	cat := nlquery.Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range nlquery.Categories() {
		if cat == known {
			return known, true
		}
	}
	return "", false
}

// primaryTable picks the driving table: lowest catalog position wins, which
// keeps the choice deterministic for any table set.
func (c *Classifier) primaryTable(tables []string) string {
	best := ""
	bestPos := -1
	for _, t := range tables {
		pos := c.catalog.Position(t)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos {
			best = t
			bestPos = pos
		}
	}
	if best == "" && len(tables) > 0 {
		return tables[0]
	}
	return best
}

func describeFilter(f nlquery.Filter) string {
	switch f.Kind {
	case nlquery.FilterEquals:
		return fmt.Sprintf("filter %s = %q", f.Column, f.Value)
	case nlquery.FilterRange:
		return fmt.Sprintf("filter %s in [%s, %s]", f.Column, f.Min, f.Max)
	case nlquery.FilterIn:
		return fmt.Sprintf("filter %s in %v", f.Column, f.Values)
	case nlquery.FilterPattern:
		return fmt.Sprintf("filter %s like %q", f.Column, f.Pattern)
	}
	return fmt.Sprintf("filter %s", f.Column)
}
