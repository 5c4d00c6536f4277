package classifier

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"sales-crm-be/pkg/nlquery"
)

// categoryKeywords maps each category to weighted trigger keywords.
// Modifier categories (comparison, trend, prediction) carry a higher weight
// than entity categories so "compare accounts by region" lands on
// COMPARISON_QUERY rather than ACCOUNT_QUERY. Single words match on word
// boundaries, so plural and inflected forms must be listed explicitly.
var categoryKeywords = []struct {
	category nlquery.Category
	weight   float64
	words    []string
}{
	{nlquery.CategoryPrediction, 3, []string{"predict", "predicts", "prediction", "forecast", "forecasts", "likely to", "probability", "projection", "projections", "expected to close"}},
	{nlquery.CategoryTrend, 3, []string{"trend", "trends", "over time", "growth", "month over month", "history of"}},
	{nlquery.CategoryComparison, 3, []string{"compare", "compared", "comparison", "versus", "vs", "breakdown", "by region", "by industry", "per rep", "per region"}},
	{nlquery.CategoryPerformance, 3, []string{"performance", "quota", "quotas", "top performer", "best rep", "win rate", "conversion rate"}},
	{nlquery.CategoryQuotation, 2, []string{"quote", "quotes", "quotation", "quotations", "proposal", "proposals", "pricing", "price list"}},
	{nlquery.CategoryLead, 2, []string{"lead", "leads", "deal", "deals", "opportunity", "opportunities", "pipeline"}},
	{nlquery.CategoryActivity, 2, []string{"activity", "activities", "task", "tasks", "call", "calls", "meeting", "meetings", "follow-up", "follow-ups", "followup", "followups", "overdue"}},
	{nlquery.CategoryContact, 2, []string{"contact", "contacts", "person", "people", "phone"}},
	{nlquery.CategoryAccount, 2, []string{"account", "accounts", "company", "companies", "customer", "customers", "client", "clients"}},
	{nlquery.CategoryAggregation, 1, []string{"how many", "how much", "total", "count", "sum", "average"}},
}

// scoreCategories picks the best category for the lowercased question.
// Returns the category, a confidence and the keyword that matched. A
// question with no signal still gets a best-effort guess at low confidence.
func scoreCategories(lower string) (nlquery.Category, float64, string) {
	bestCat := nlquery.CategoryAccount
	bestScore := 0.0
	bestWord := ""

	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if matchKeyword(lower, w) {
				score := ck.weight
				if score > bestScore {
					bestScore = score
					bestCat = ck.category
					bestWord = w
				}
				break
			}
		}
	}

	if bestScore == 0 {
		return bestCat, 0.2, ""
	}
	confidence := 0.45 + 0.1*bestScore
	if confidence > 0.8 {
		confidence = 0.8
	}
	return bestCat, confidence, bestWord
}

// entityMentions lists the entity tables named in the question, in catalog
// declaration order.
var entityMentionWords = []struct {
	table string
	words []string
}{
	{"accounts", []string{"account", "accounts", "company", "companies", "customer", "customers", "client", "clients"}},
	{"contacts", []string{"contact", "contacts", "person", "people"}},
	{"leads", []string{"lead", "leads", "deal", "deals", "opportunity", "opportunities", "pipeline"}},
	{"sales_activities", []string{"activity", "activities", "task", "tasks", "call", "calls", "meeting", "meetings"}},
	{"quotations", []string{"quote", "quotes", "quotation", "quotations", "proposal", "proposals"}},
}

func entityTables(lower string) []string {
	var out []string
	for _, em := range entityMentionWords {
		for _, w := range em.words {
			if matchKeyword(lower, w) {
				out = append(out, em.table)
				break
			}
		}
	}
	return out
}

// tablesForCategory resolves the base table set a category implies,
// consulting the question text for modifier categories whose target entity
// varies.
func (c *Classifier) tablesForCategory(category nlquery.Category, lower string) []string {
	switch category {
	case nlquery.CategoryContact:
		return []string{"contacts"}
	case nlquery.CategoryAccount:
		return []string{"accounts"}
	case nlquery.CategoryActivity:
		return []string{"sales_activities"}
	case nlquery.CategoryLead:
		return []string{"leads"}
	case nlquery.CategoryQuotation:
		tables := []string{"quotations"}
		for _, w := range []string{"product", "products", "item", "items", "line", "lines"} {
			if containsWord(lower, w) {
				tables = append(tables, "quotation_products")
				break
			}
		}
		return tables
	case nlquery.CategoryPerformance:
		tables := []string{"users", "sales_activities"}
		for _, w := range []string{"revenue", "sales", "quota", "quotas", "quote", "quotes", "quotation", "quotations"} {
			if containsWord(lower, w) {
				tables = append(tables, "quotations")
				break
			}
		}
		return tables
	case nlquery.CategoryPrediction:
		return []string{"leads"}
	case nlquery.CategoryTrend:
		if t := entityTables(lower); len(t) > 0 {
			return t
		}
		return []string{"sales_activities"}
	case nlquery.CategoryComparison, nlquery.CategoryAggregation:
		if t := entityTables(lower); len(t) > 0 {
			return t
		}
		return []string{"accounts"}
	}
	return []string{"accounts"}
}

// aggregationVerbs in priority order; count comes first so "total number
// of" reads as a count rather than a sum. Word-boundary matching keeps
// "count" from firing inside "accounts" or "discount".
var aggregationVerbs = []struct {
	agg   nlquery.AggregationType
	words []string
}{
	{nlquery.AggCount, []string{"how many", "count", "number of"}},
	{nlquery.AggAvg, []string{"average", "avg", "mean"}},
	{nlquery.AggMax, []string{"highest", "largest", "maximum", "biggest", "most expensive"}},
	{nlquery.AggMin, []string{"lowest", "smallest", "minimum", "cheapest"}},
	{nlquery.AggSum, []string{"total", "sum", "how much"}},
}

// valueColumns is the numeric column an aggregate targets per table; count
// always targets id.
var valueColumns = map[string]string{
	"quotations":         "total_amount",
	"quotation_products": "unit_price",
	"leads":              "estimated_value",
	"accounts":           "engagement_score",
}

func (c *Classifier) detectAggregation(lower, primary string) *nlquery.Aggregation {
	for _, av := range aggregationVerbs {
		for _, w := range av.words {
			if !matchKeyword(lower, w) {
				continue
			}
			column := "id"
			if av.agg != nlquery.AggCount {
				if vc, ok := valueColumns[primary]; ok && c.catalog.HasColumn(primary, vc) {
					column = vc
				}
			}
			return &nlquery.Aggregation{
				Type:   av.agg,
				Column: nlquery.ColumnRef{Table: primary, Column: column},
			}
		}
	}
	return nil
}

var lastNDaysRe = regexp.MustCompile(`(?:last|past)\s+(\d+)\s+days?`)

// detectTimeRange resolves relative time expressions against the primary
// table's default timestamp column.
func (c *Classifier) detectTimeRange(lower, primary string) *nlquery.TimeRange {
	t, ok := c.catalog.Table(primary)
	if !ok || t.TimestampColumn == "" {
		return nil
	}
	col := nlquery.ColumnRef{Table: primary, Column: t.TimestampColumn}

	now := c.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	mk := func(start, end time.Time) *nlquery.TimeRange {
		return &nlquery.TimeRange{Column: col, Start: start, End: end}
	}

	switch {
	case strings.Contains(lower, "today"):
		return mk(startOfDay, now)
	case strings.Contains(lower, "yesterday"):
		return mk(startOfDay.AddDate(0, 0, -1), startOfDay)
	case strings.Contains(lower, "this week"):
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		return mk(startOfDay.AddDate(0, 0, -(weekday-1)), now)
	case strings.Contains(lower, "last week"):
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		thisMonday := startOfDay.AddDate(0, 0, -(weekday - 1))
		return mk(thisMonday.AddDate(0, 0, -7), thisMonday)
	case strings.Contains(lower, "this month"):
		return mk(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now)
	case strings.Contains(lower, "last month"):
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return mk(first.AddDate(0, -1, 0), first)
	case strings.Contains(lower, "this quarter"):
		qMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return mk(time.Date(now.Year(), qMonth, 1, 0, 0, 0, 0, now.Location()), now)
	case strings.Contains(lower, "this year"):
		return mk(time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), now)
	case strings.Contains(lower, "last year"):
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return mk(first.AddDate(-1, 0, 0), first)
	}

	if m := lastNDaysRe.FindStringSubmatch(lower); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil && days > 0 {
			return mk(startOfDay.AddDate(0, 0, -days), now)
		}
	}
	return nil
}

var statusWords = []string{
	"open", "closed", "won", "lost", "pending", "active", "inactive",
	"draft", "sent", "accepted", "rejected",
}

var quotedTermRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

var ownershipPhrases = []string{"my ", " me ", "i have", "assigned to me", "i own", "do i"}

// detectFilters extracts entity qualifiers into typed filters. Ownership
// phrasing ("my leads") becomes an explicit filter only for privileged
// callers; unprivileged callers are scoped by the builder anyway and a
// duplicate predicate would just be noise.
func (c *Classifier) detectFilters(lower, original, primary string, intent *nlquery.QueryIntent, userCtx *nlquery.UserContext) []nlquery.Filter {
	var filters []nlquery.Filter

	// Status qualifier on the primary table
	if c.catalog.HasColumn(primary, "status") {
		for _, status := range statusWords {
			if containsWord(lower, status) {
				ref := nlquery.ColumnRef{Table: primary, Column: "status"}
				if f, err := nlquery.NewEqualsFilter(c.catalog, ref, status); err == nil {
					filters = append(filters, f)
				}
				break
			}
		}
	}

	// Ownership phrasing for privileged callers
	if userCtx != nil && userCtx.Privileged() {
		for _, phrase := range ownershipPhrases {
			if strings.Contains(lower, phrase) {
				if t, ok := c.catalog.Table(primary); ok && t.OwnerColumn != "" {
					ref := nlquery.ColumnRef{Table: primary, Column: t.OwnerColumn}
					if f, err := nlquery.NewEqualsFilter(c.catalog, ref, userCtx.OwnerId().String()); err == nil {
						filters = append(filters, f)
					}
				}
				break
			}
		}
	}

	// Engagement qualifiers always target accounts
	if strings.Contains(lower, "low engagement") || strings.Contains(lower, "high engagement") {
		ref := nlquery.ColumnRef{Table: "accounts", Column: "engagement_score"}
		var f nlquery.Filter
		var err error
		if strings.Contains(lower, "low engagement") {
			f, err = nlquery.NewRangeFilter(c.catalog, ref, "", "40")
		} else {
			f, err = nlquery.NewRangeFilter(c.catalog, ref, "70", "")
		}
		if err == nil {
			filters = append(filters, f)
		}
	}

	// Quoted term becomes a contains-match on the primary name column
	if m := quotedTermRe.FindStringSubmatch(original); m != nil {
		term := m[1]
		if term == "" {
			term = m[2]
		}
		if col := c.nameColumn(primary); col != "" && term != "" {
			ref := nlquery.ColumnRef{Table: primary, Column: col}
			if f, err := nlquery.NewPatternFilter(c.catalog, ref, "%"+term+"%"); err == nil {
				filters = append(filters, f)
			}
		}
	}

	return filters
}

// nameColumn picks the human-searchable text column for a table.
func (c *Classifier) nameColumn(table string) string {
	for _, candidate := range []string{"name", "full_name", "subject", "quote_number", "description"} {
		if c.catalog.HasColumn(table, candidate) {
			return candidate
		}
	}
	return ""
}

var groupByRe = regexp.MustCompile(`(?:by|per)\s+(region|industry|status|source|stage|rep|owner)`)

// detectGroupBy resolves "by X" / "per X" phrases to catalog columns.
func (c *Classifier) detectGroupBy(lower, primary string, intent *nlquery.QueryIntent) []nlquery.ColumnRef {
	var groups []nlquery.ColumnRef
	seen := make(map[string]bool)

	for _, m := range groupByRe.FindAllStringSubmatch(lower, -1) {
		word := m[1]
		var ref nlquery.ColumnRef
		switch word {
		case "region", "industry":
			ref = nlquery.ColumnRef{Table: "accounts", Column: word}
		case "source", "stage":
			ref = nlquery.ColumnRef{Table: "leads", Column: word}
		case "status":
			if !c.catalog.HasColumn(primary, "status") {
				continue
			}
			ref = nlquery.ColumnRef{Table: primary, Column: "status"}
		case "rep", "owner":
			t, ok := c.catalog.Table(primary)
			if !ok || t.OwnerColumn == "" {
				continue
			}
			ref = nlquery.ColumnRef{Table: primary, Column: t.OwnerColumn}
		default:
			continue
		}
		if !c.catalog.HasColumn(ref.Table, ref.Column) {
			continue
		}
		if !seen[ref.String()] {
			seen[ref.String()] = true
			groups = append(groups, ref)
		}
	}
	return groups
}

var limitRe = regexp.MustCompile(`(?:top|first|latest)\s+(\d+)`)

func detectLimit(lower string) int {
	if m := limitRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// matchKeyword matches multi-word phrases as substrings and single words on
// word boundaries, so "quota" does not match "quotations".
func matchKeyword(s, w string) bool {
	if strings.Contains(w, " ") {
		return strings.Contains(s, w)
	}
	return containsWord(s, w)
}

// containsWord matches whole words only, so "open" does not match "opened".
func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
