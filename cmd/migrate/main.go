package main

import (
	"log"
	"os"

	"sales-crm-be/internal/model"
	"sales-crm-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (things GORM AutoMigrate doesn't do)
	color.Cyan("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Enums (idempotent creation)
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('user', 'manager', 'admin'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'lead_stage') THEN CREATE TYPE lead_stage AS ENUM ('new', 'qualified', 'proposal', 'negotiation', 'closed_won', 'closed_lost'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quotation_status') THEN CREATE TYPE quotation_status AS ENUM ('draft', 'sent', 'accepted', 'rejected', 'expired'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'activity_status') THEN CREATE TYPE activity_status AS ENUM ('pending', 'completed', 'overdue', 'canceled'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Account{},
		&model.Contact{},
		&model.Lead{},
		&model.SalesActivity{},
		&model.Quotation{},
		&model.QuotationProduct{},
		&model.ActivityLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: Views
	color.Cyan("Step 3: Creating Views...")

	postMigrationSQL := []string{
		// View: open_pipeline. One row per open lead with owner and account context.
		`CREATE OR REPLACE VIEW open_pipeline AS
		 SELECT l.id AS lead_id, l.stage, l.estimated_value, l.assigned_to, a.name AS account_name, a.region
		 FROM leads l
		 LEFT JOIN accounts a ON l.account_id = a.id
		 WHERE l.status = 'open' AND l.deleted_at IS NULL;`,

		// View: quotation_totals
		`CREATE OR REPLACE VIEW quotation_totals AS
		 SELECT q.id AS quotation_id, q.quote_number, q.status, q.total_amount, q.created_by, a.name AS account_name
		 FROM quotations q
		 JOIN accounts a ON q.account_id = a.id
		 WHERE q.deleted_at IS NULL
		 ORDER BY q.created_at DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
