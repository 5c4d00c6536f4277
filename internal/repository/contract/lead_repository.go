package contract

import (
	"context"

	"github.com/google/uuid"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/repository/specification"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumEstimatedValue(ctx context.Context, specs ...specification.Specification) (float64, error)
}
