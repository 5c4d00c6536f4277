package contract

import (
	"context"

	"github.com/google/uuid"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/repository/specification"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
