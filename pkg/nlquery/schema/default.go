package schema

// Default returns the CRM schema catalog used in production. Declaration
// order here drives join ordering in the query builder, so keep users and
// accounts first.
func Default() Catalog {
	return New(
		Table{
			Name: "users",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "full_name", Type: "text"},
				{Name: "email", Type: "text"},
				{Name: "role", Type: "text"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "users_pkey", Columns: []string{"id"}},
				{Name: "idx_users_email", Columns: []string{"email"}},
			},
			SizeEstimate:    50,
			Small:           true,
			OwnerColumn:     "id",
			TimestampColumn: "created_at",
		},
		Table{
			Name: "accounts",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "name", Type: "text"},
				{Name: "industry", Type: "text"},
				{Name: "region", Type: "text"},
				{Name: "status", Type: "text"},
				{Name: "engagement_score", Type: "numeric"},
				{Name: "owner_id", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
				{Name: "updated_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "accounts_pkey", Columns: []string{"id"}},
				{Name: "idx_accounts_owner", Columns: []string{"owner_id"}},
				{Name: "idx_accounts_status", Columns: []string{"status"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "owner_id", ForeignTable: "users", ForeignColumn: "id"},
			},
			SizeEstimate:    5000,
			OwnerColumn:     "owner_id",
			TimestampColumn: "created_at",
		},
		Table{
			Name: "contacts",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "account_id", Type: "uuid"},
				{Name: "full_name", Type: "text"},
				{Name: "email", Type: "text"},
				{Name: "phone", Type: "text"},
				{Name: "title", Type: "text"},
				{Name: "status", Type: "text"},
				{Name: "owner_id", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "contacts_pkey", Columns: []string{"id"}},
				{Name: "idx_contacts_account", Columns: []string{"account_id"}},
				{Name: "idx_contacts_owner", Columns: []string{"owner_id"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "account_id", ForeignTable: "accounts", ForeignColumn: "id"},
			},
			SizeEstimate:    20000,
			OwnerColumn:     "owner_id",
			TimestampColumn: "created_at",
		},
		Table{
			Name: "leads",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "contact_id", Type: "uuid"},
				{Name: "source", Type: "text"},
				{Name: "status", Type: "text"},
				{Name: "stage", Type: "text"},
				{Name: "estimated_value", Type: "numeric"},
				{Name: "assigned_to", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
				{Name: "updated_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "leads_pkey", Columns: []string{"id"}},
				{Name: "idx_leads_assigned", Columns: []string{"assigned_to"}},
				{Name: "idx_leads_status", Columns: []string{"status"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "contact_id", ForeignTable: "contacts", ForeignColumn: "id"},
				{LocalColumn: "assigned_to", ForeignTable: "users", ForeignColumn: "id"},
			},
			SizeEstimate:    8000,
			OwnerColumn:     "assigned_to",
			TimestampColumn: "created_at",
		},
		Table{
			Name: "sales_activities",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "lead_id", Type: "uuid"},
				{Name: "account_id", Type: "uuid"},
				{Name: "activity_type", Type: "text"},
				{Name: "subject", Type: "text"},
				{Name: "due_at", Type: "timestamp", Timestamp: true},
				{Name: "completed_at", Type: "timestamp", Timestamp: true},
				{Name: "assigned_to", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "sales_activities_pkey", Columns: []string{"id"}},
				{Name: "idx_activities_assigned", Columns: []string{"assigned_to"}},
				{Name: "idx_activities_due", Columns: []string{"due_at"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "lead_id", ForeignTable: "leads", ForeignColumn: "id"},
				{LocalColumn: "account_id", ForeignTable: "accounts", ForeignColumn: "id"},
				{LocalColumn: "assigned_to", ForeignTable: "users", ForeignColumn: "id"},
			},
			SizeEstimate:    60000,
			OwnerColumn:     "assigned_to",
			TimestampColumn: "due_at",
		},
		Table{
			Name: "quotations",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "account_id", Type: "uuid"},
				{Name: "contact_id", Type: "uuid"},
				{Name: "quote_number", Type: "text"},
				{Name: "status", Type: "text"},
				{Name: "total_amount", Type: "numeric"},
				{Name: "valid_until", Type: "timestamp", Timestamp: true},
				{Name: "created_by", Type: "uuid"},
				{Name: "created_at", Type: "timestamp", Timestamp: true},
			},
			Indexes: []Index{
				{Name: "quotations_pkey", Columns: []string{"id"}},
				{Name: "idx_quotations_account", Columns: []string{"account_id"}},
				{Name: "idx_quotations_creator", Columns: []string{"created_by"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "account_id", ForeignTable: "accounts", ForeignColumn: "id"},
				{LocalColumn: "contact_id", ForeignTable: "contacts", ForeignColumn: "id"},
				{LocalColumn: "created_by", ForeignTable: "users", ForeignColumn: "id"},
			},
			SizeEstimate:    12000,
			OwnerColumn:     "created_by",
			TimestampColumn: "created_at",
		},
		Table{
			Name: "quotation_products",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "quotation_id", Type: "uuid"},
				{Name: "product_code", Type: "text"},
				{Name: "description", Type: "text"},
				{Name: "quantity", Type: "numeric"},
				{Name: "unit_price", Type: "numeric"},
				{Name: "discount_pct", Type: "numeric"},
			},
			Indexes: []Index{
				{Name: "quotation_products_pkey", Columns: []string{"id"}},
				{Name: "idx_quotation_products_quote", Columns: []string{"quotation_id"}},
			},
			Relationships: []Relationship{
				{LocalColumn: "quotation_id", ForeignTable: "quotations", ForeignColumn: "id"},
			},
			SizeEstimate: 40000,
		},
	)
}
