package contract

import (
	"context"

	"github.com/google/uuid"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/repository/specification"
)

type SalesActivityRepository interface {
	Create(ctx context.Context, activity *entity.SalesActivity) error
	Update(ctx context.Context, activity *entity.SalesActivity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SalesActivity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SalesActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
