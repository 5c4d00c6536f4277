package schema

import (
	"testing"
)

func fixtureCatalog() Catalog {
	return New(
		Table{
			Name: "alpha",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
			},
			Indexes:      []Index{{Name: "alpha_pkey", Columns: []string{"id"}}},
			SizeEstimate: 10,
			Small:        true,
		},
		Table{
			Name: "beta",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "alpha_id", Type: "uuid"},
			},
			Relationships: []Relationship{
				{LocalColumn: "alpha_id", ForeignTable: "alpha", ForeignColumn: "id"},
			},
			SizeEstimate: 100,
		},
	)
}

func TestCatalogLookup(t *testing.T) {
	c := fixtureCatalog()

	if !c.HasTable("alpha") {
		t.Error("expected alpha to exist")
	}
	if c.HasTable("gamma") {
		t.Error("gamma should not exist")
	}
	if !c.HasColumn("beta", "alpha_id") {
		t.Error("expected beta.alpha_id")
	}
	if c.HasColumn("beta", "created_at") {
		t.Error("beta.created_at should not exist")
	}
	if !c.IsTimestampColumn("alpha", "created_at") {
		t.Error("alpha.created_at should be a timestamp column")
	}
	if c.IsTimestampColumn("alpha", "id") {
		t.Error("alpha.id is not a timestamp column")
	}
}

func TestCatalogPositionOrder(t *testing.T) {
	c := fixtureCatalog()

	if got := c.Position("alpha"); got != 0 {
		t.Errorf("Position(alpha) = %d, want 0", got)
	}
	if got := c.Position("beta"); got != 1 {
		t.Errorf("Position(beta) = %d, want 1", got)
	}
	if got := c.Position("missing"); got != -1 {
		t.Errorf("Position(missing) = %d, want -1", got)
	}
}

func TestRelationshipBetweenFlipsDirection(t *testing.T) {
	c := fixtureCatalog()

	// Declared direction: beta -> alpha
	rel, ok := c.RelationshipBetween("beta", "alpha")
	if !ok {
		t.Fatal("expected relationship beta->alpha")
	}
	if rel.LocalColumn != "alpha_id" || rel.ForeignColumn != "id" {
		t.Errorf("beta->alpha = %+v", rel)
	}

	// Reverse lookup flips the edge
	rel, ok = c.RelationshipBetween("alpha", "beta")
	if !ok {
		t.Fatal("expected relationship alpha->beta")
	}
	if rel.LocalColumn != "id" || rel.ForeignColumn != "alpha_id" {
		t.Errorf("alpha->beta = %+v", rel)
	}
}

func TestSizeEstimateDefaultsHigh(t *testing.T) {
	c := fixtureCatalog()

	if got := c.SizeEstimate("alpha"); got != 10 {
		t.Errorf("SizeEstimate(alpha) = %d, want 10", got)
	}
	if got := c.SizeEstimate("unknown"); got != 100000 {
		t.Errorf("SizeEstimate(unknown) = %d, want conservative default 100000", got)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	for _, name := range []string{"users", "accounts", "contacts", "leads", "sales_activities", "quotations", "quotation_products"} {
		if !c.HasTable(name) {
			t.Errorf("default catalog missing table %q", name)
		}
	}

	// Join ordering depends on users/accounts being declared first.
	if c.Position("users") != 0 || c.Position("accounts") != 1 {
		t.Error("users and accounts must stay first in declaration order")
	}

	// Every table except quotation_products must be ownable for row-level scoping.
	for _, tbl := range c.Tables() {
		if tbl.Name == "quotation_products" {
			continue
		}
		if tbl.OwnerColumn == "" {
			t.Errorf("table %q has no owner column", tbl.Name)
		}
		if !c.HasColumn(tbl.Name, tbl.OwnerColumn) {
			t.Errorf("table %q owner column %q is not declared", tbl.Name, tbl.OwnerColumn)
		}
	}
}
