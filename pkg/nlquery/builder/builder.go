package builder

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"sales-crm-be/pkg/nlquery"
	"sales-crm-be/pkg/nlquery/schema"
)

// Builder turns a QueryIntent into an advisory QueryPlan. Output is
// deterministic: identical (intent, context) pairs produce byte-identical
// SQL. The plan is never executed against a live connection.
type Builder struct {
	catalog schema.Catalog
	logger  *log.Logger
}

func NewBuilder(catalog schema.Catalog, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{catalog: catalog, logger: logger}
}

// Build validates the intent against the catalog, applies row-level
// scoping for non-privileged callers and emits the parameterized SQL plus
// a plain-language explanation.
//
// The validation here is defensive: a correct classifier never produces an
// invariant-violating intent, but the builder does not trust its input.
func (b *Builder) Build(intent *nlquery.QueryIntent, userCtx *nlquery.UserContext) (*nlquery.QueryPlan, error) {
	if intent == nil {
		return b.reject(&nlquery.BuildError{Reason: "intent is nil"})
	}
	if userCtx == nil {
		return b.reject(&nlquery.BuildError{Reason: "user context is required", Intent: intent})
	}
	if err := b.validate(intent); err != nil {
		return b.reject(err)
	}

	// Tables in catalog declaration order; the first is the driving table.
	tables := b.orderTables(intent.Tables)
	primary := tables[0]
	primaryDef, _ := b.catalog.Table(primary)

	var (
		args       []interface{}
		conds      []string
		predicates []nlquery.Predicate
		nested     int
	)
	placeholder := func() string {
		return fmt.Sprintf("$%d", len(args)+1)
	}

	// SELECT
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if intent.Aggregation != nil {
		sb.WriteString(renderGroupColumns(intent.GroupBy))
		sb.WriteString(fmt.Sprintf("%s(%s)", strings.ToUpper(string(intent.Aggregation.Type)), intent.Aggregation.Column))
	} else {
		sb.WriteString(primary + ".*")
	}

	// FROM + JOINs in declaration order
	sb.WriteString(" FROM " + primary)
	joined := map[string]bool{primary: true}
	for _, t := range tables[1:] {
		rel, ok := b.findJoin(joined, t)
		if ok {
			sb.WriteString(fmt.Sprintf(" JOIN %s ON %s.%s = %s.%s",
				t, rel.from, rel.edge.LocalColumn, t, rel.edge.ForeignColumn))
		} else {
			// No declared relationship; the analyzer will flag the cost.
			sb.WriteString(" CROSS JOIN " + t)
		}
		joined[t] = true
	}

	// Intent filters
	for _, f := range intent.Filters {
		switch f.Kind {
		case nlquery.FilterEquals:
			conds = append(conds, fmt.Sprintf("%s = %s", f.Column, placeholder()))
			args = append(args, f.Value)
		case nlquery.FilterRange:
			if f.Min != "" {
				conds = append(conds, fmt.Sprintf("%s >= %s", f.Column, placeholder()))
				args = append(args, f.Min)
			}
			if f.Max != "" {
				conds = append(conds, fmt.Sprintf("%s <= %s", f.Column, placeholder()))
				args = append(args, f.Max)
			}
		case nlquery.FilterIn:
			marks := make([]string, len(f.Values))
			for i, v := range f.Values {
				marks[i] = placeholder()
				args = append(args, v)
			}
			conds = append(conds, fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(marks, ", ")))
		case nlquery.FilterPattern:
			conds = append(conds, fmt.Sprintf("%s LIKE %s", f.Column, placeholder()))
			args = append(args, f.Pattern)
		default:
			return b.reject(&nlquery.BuildError{
				Reason: fmt.Sprintf("unsupported filter kind %q on %s", f.Kind, f.Column),
				Intent: intent,
			})
		}
		predicates = append(predicates, nlquery.Predicate{
			Column:   f.Column,
			Kind:     f.Kind,
			Wildcard: f.Kind == nlquery.FilterPattern && strings.HasPrefix(f.Pattern, "%"),
		})
	}

	// Time range
	if tr := intent.TimeRange; tr != nil {
		conds = append(conds, fmt.Sprintf("%s >= %s", tr.Column, placeholder()))
		args = append(args, tr.Start)
		conds = append(conds, fmt.Sprintf("%s <= %s", tr.Column, placeholder()))
		args = append(args, tr.End)
		predicates = append(predicates, nlquery.Predicate{Column: tr.Column, Kind: nlquery.FilterRange})
	}

	// Row-level scoping: hard security invariant, not a convenience
	// default. Every query for a non-privileged caller carries an
	// ownership predicate on the driving table.
	ownershipApplied := false
	if !userCtx.Privileged() {
		ownerCol := primaryDef.OwnerColumn
		ownerTable := primary
		if ownerCol == "" {
			// Driving table has no owner column (e.g. quotation_products);
			// scope on the first joined table that has one.
			for _, t := range tables[1:] {
				if def, ok := b.catalog.Table(t); ok && def.OwnerColumn != "" {
					ownerCol = def.OwnerColumn
					ownerTable = t
					break
				}
			}
		}
		if ownerCol == "" {
			return b.reject(&nlquery.BuildError{
				Reason: fmt.Sprintf("no ownership column available to scope %q for role %q", primary, userCtx.Role),
				Intent: intent,
			})
		}
		ref := nlquery.ColumnRef{Table: ownerTable, Column: ownerCol}
		conds = append(conds, fmt.Sprintf("%s = %s", ref, placeholder()))
		args = append(args, userCtx.OwnerId())
		predicates = append(predicates, nlquery.Predicate{Column: ref, Kind: nlquery.FilterEquals, Ownership: true})
		ownershipApplied = true
	}

	// Prediction intents compare against an aggregate of the same table.
	if intent.Category == nlquery.CategoryPrediction && b.catalog.HasColumn(primary, "estimated_value") {
		conds = append(conds, fmt.Sprintf("%s.estimated_value >= (SELECT AVG(estimated_value) FROM %s)", primary, primary))
		predicates = append(predicates, nlquery.Predicate{
			Column: nlquery.ColumnRef{Table: primary, Column: "estimated_value"},
			Kind:   nlquery.FilterRange,
		})
		nested++
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	// GROUP BY
	groupTables := make(map[string]bool)
	if len(intent.GroupBy) > 0 {
		refs := make([]string, len(intent.GroupBy))
		for i, g := range intent.GroupBy {
			refs[i] = g.String()
			groupTables[g.Table] = true
		}
		sb.WriteString(" GROUP BY " + strings.Join(refs, ", "))
	}

	// ORDER BY keeps row-returning output stable
	if intent.Aggregation == nil && primaryDef.TimestampColumn != "" {
		sb.WriteString(fmt.Sprintf(" ORDER BY %s.%s DESC", primary, primaryDef.TimestampColumn))
	}

	if intent.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", intent.Limit))
	}

	plan := &nlquery.QueryPlan{
		SQL:            sb.String(),
		Args:           args,
		AffectedTables: tables,
		PrimaryTable:   primary,
		Predicates:     predicates,
		JoinCount:      len(tables) - 1,
		Limit:          intent.Limit,
		Aggregate:      intent.Aggregation != nil,
		GroupByTables:  sortedKeys(groupTables),
		NestedSelects:  nested,
	}
	plan.Explanation = b.explain(intent, tables, ownershipApplied)

	return plan, nil
}

// reject surfaces the rejection in the server log before returning it; a
// build failure means the classifier or catalog produced a bad intent.
func (b *Builder) reject(err error) (*nlquery.QueryPlan, error) {
	b.logger.Printf("[BUILDER] rejecting intent: %v", err)
	return nil, err
}

// validate re-checks the intent invariants: known tables, filters bound to
// listed tables, and every column present in the catalog allow-list.
func (b *Builder) validate(intent *nlquery.QueryIntent) error {
	if len(intent.Tables) == 0 {
		return &nlquery.BuildError{Reason: "intent has no tables", Intent: intent}
	}
	listed := make(map[string]bool, len(intent.Tables))
	for _, t := range intent.Tables {
		if !b.catalog.HasTable(t) {
			return &nlquery.BuildError{Reason: fmt.Sprintf("table %q is not in the schema catalog", t), Intent: intent}
		}
		listed[t] = true
	}

	checkRef := func(what string, ref nlquery.ColumnRef) error {
		if !listed[ref.Table] {
			return &nlquery.BuildError{
				Reason: fmt.Sprintf("%s references table %q which is not listed in the intent", what, ref.Table),
				Intent: intent,
			}
		}
		if !b.catalog.HasColumn(ref.Table, ref.Column) {
			return &nlquery.BuildError{
				Reason: fmt.Sprintf("%s references column %s which is not in the schema catalog", what, ref),
				Intent: intent,
			}
		}
		return nil
	}

	for _, f := range intent.Filters {
		if err := checkRef("filter", f.Column); err != nil {
			return err
		}
	}
	if intent.Aggregation != nil {
		if err := checkRef("aggregation", intent.Aggregation.Column); err != nil {
			return err
		}
	}
	if intent.TimeRange != nil {
		if err := checkRef("time range", intent.TimeRange.Column); err != nil {
			return err
		}
	}
	for _, g := range intent.GroupBy {
		if err := checkRef("group by", g); err != nil {
			return err
		}
	}
	return nil
}

// orderTables sorts the intent's tables by catalog declaration order so
// join order is stable across runs. Unknown tables cannot reach here; the
// validate step rejects them.
func (b *Builder) orderTables(tables []string) []string {
	out := make([]string, len(tables))
	copy(out, tables)
	sort.SliceStable(out, func(i, j int) bool {
		return b.catalog.Position(out[i]) < b.catalog.Position(out[j])
	})
	return out
}

type joinEdge struct {
	from string
	edge schema.Relationship
}

// findJoin locates a declared relationship between the new table and any
// already-joined table.
func (b *Builder) findJoin(joined map[string]bool, table string) (joinEdge, bool) {
	// Iterate catalog order for determinism
	for _, t := range b.catalog.Tables() {
		if !joined[t.Name] {
			continue
		}
		if rel, ok := b.catalog.RelationshipBetween(t.Name, table); ok {
			return joinEdge{from: t.Name, edge: rel}, true
		}
	}
	return joinEdge{}, false
}

func renderGroupColumns(groups []nlquery.ColumnRef) string {
	if len(groups) == 0 {
		return ""
	}
	refs := make([]string, len(groups))
	for i, g := range groups {
		refs[i] = g.String()
	}
	return strings.Join(refs, ", ") + ", "
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// explain renders the plain-language description in fixed order: tables,
// filters, aggregation, time range.
func (b *Builder) explain(intent *nlquery.QueryIntent, tables []string, ownershipApplied bool) string {
	var parts []string

	if len(tables) == 1 {
		parts = append(parts, fmt.Sprintf("Reads from %s", tables[0]))
	} else {
		parts = append(parts, fmt.Sprintf("Reads from %s joined with %s", tables[0], strings.Join(tables[1:], ", ")))
	}

	var filterDescs []string
	for _, f := range intent.Filters {
		switch f.Kind {
		case nlquery.FilterEquals:
			filterDescs = append(filterDescs, fmt.Sprintf("%s equals %q", f.Column, f.Value))
		case nlquery.FilterRange:
			switch {
			case f.Min != "" && f.Max != "":
				filterDescs = append(filterDescs, fmt.Sprintf("%s between %s and %s", f.Column, f.Min, f.Max))
			case f.Min != "":
				filterDescs = append(filterDescs, fmt.Sprintf("%s at least %s", f.Column, f.Min))
			default:
				filterDescs = append(filterDescs, fmt.Sprintf("%s at most %s", f.Column, f.Max))
			}
		case nlquery.FilterIn:
			filterDescs = append(filterDescs, fmt.Sprintf("%s in (%s)", f.Column, strings.Join(f.Values, ", ")))
		case nlquery.FilterPattern:
			filterDescs = append(filterDescs, fmt.Sprintf("%s matches %q", f.Column, f.Pattern))
		}
	}
	if ownershipApplied {
		filterDescs = append(filterDescs, "restricted to records owned by the caller")
	}
	if len(filterDescs) > 0 {
		parts = append(parts, "filtered where "+strings.Join(filterDescs, " and "))
	}

	if intent.Aggregation != nil {
		desc := fmt.Sprintf("computes %s of %s", intent.Aggregation.Type, intent.Aggregation.Column)
		if len(intent.GroupBy) > 0 {
			groups := make([]string, len(intent.GroupBy))
			for i, g := range intent.GroupBy {
				groups[i] = g.String()
			}
			desc += " grouped by " + strings.Join(groups, ", ")
		}
		parts = append(parts, desc)
	}

	if tr := intent.TimeRange; tr != nil {
		parts = append(parts, fmt.Sprintf("limited to %s between %s and %s",
			tr.Column, tr.Start.Format("2006-01-02"), tr.End.Format("2006-01-02")))
	}

	if intent.Limit > 0 {
		parts = append(parts, fmt.Sprintf("returning at most %d rows", intent.Limit))
	}

	return strings.Join(parts, "; ") + "."
}
