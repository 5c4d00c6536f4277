package analyzer

import (
	"sales-crm-be/pkg/nlquery"
)

// Complexity is the three-level bucket shown on intent previews.
type Complexity string

const (
	ComplexitySimple   Complexity = "SIMPLE"
	ComplexityModerate Complexity = "MODERATE"
	ComplexityComplex  Complexity = "COMPLEX"
)

// categoryBaseCost is the fixed per-category weight in the complexity
// score. Analytical categories cost more than plain entity lookups.
var categoryBaseCost = map[nlquery.Category]int{
	nlquery.CategoryContact:     1,
	nlquery.CategoryAccount:     1,
	nlquery.CategoryLead:        1,
	nlquery.CategoryActivity:    2,
	nlquery.CategoryQuotation:   2,
	nlquery.CategoryAggregation: 2,
	nlquery.CategoryPerformance: 3,
	nlquery.CategoryComparison:  3,
	nlquery.CategoryTrend:       3,
	nlquery.CategoryPrediction:  4,
}

// EstimateComplexity computes the fixed weighted score over category base
// cost, table count, aggregation presence, time-range presence and filter
// count, then buckets it.
func EstimateComplexity(intent *nlquery.QueryIntent) Complexity {
	if intent == nil {
		return ComplexitySimple
	}

	score := categoryBaseCost[intent.Category]
	score += len(intent.Tables)
	if intent.Aggregation != nil {
		score += 2
	}
	if intent.TimeRange != nil {
		score++
	}
	score += len(intent.Filters)
	score += 2 * len(intent.GroupBy)

	switch {
	case score <= 4:
		return ComplexitySimple
	case score <= 8:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}
