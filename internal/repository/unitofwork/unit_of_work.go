package unitofwork

import (
	"context"

	"sales-crm-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AccountRepository() contract.AccountRepository
	ContactRepository() contract.ContactRepository
	LeadRepository() contract.LeadRepository
	SalesActivityRepository() contract.SalesActivityRepository
	QuotationRepository() contract.QuotationRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
