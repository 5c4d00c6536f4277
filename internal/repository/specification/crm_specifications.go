package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy restricts rows to a single owner. The owner column differs per
// aggregate (owner_id, assigned_to, created_by), so it is explicit here —
// the same rule the query planner enforces for non-privileged callers.
type OwnedBy struct {
	Column  string
	OwnerID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	column := s.Column
	if column == "" {
		column = "owner_id"
	}
	return db.Where(column+" = ?", s.OwnerID)
}

// ByEmail looks a user up by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByAccountID filters child rows of an account
type ByAccountID struct {
	AccountID uuid.UUID
}

func (s ByAccountID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("account_id = ?", s.AccountID)
}

// ByQuotationID filters quotation line items
type ByQuotationID struct {
	QuotationID uuid.UUID
}

func (s ByQuotationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("quotation_id = ?", s.QuotationID)
}

// ByStatus filters on the status column shared by several aggregates
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStage filters leads by pipeline stage
type ByStage struct {
	Stage string
}

func (s ByStage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stage = ?", s.Stage)
}

// DueBefore filters activities with a due date before the cutoff
type DueBefore struct {
	Cutoff time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_at IS NOT NULL AND due_at < ?", s.Cutoff)
}

// CreatedAfter filters rows created after the cutoff
type CreatedAfter struct {
	Cutoff time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Cutoff)
}
