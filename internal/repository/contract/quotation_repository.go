package contract

import (
	"context"

	"github.com/google/uuid"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/repository/specification"
)

type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quotation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quotation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Line items
	CreateProduct(ctx context.Context, product *entity.QuotationProduct) error
	FindProducts(ctx context.Context, quotationId uuid.UUID) ([]*entity.QuotationProduct, error)
	DeleteProductsByQuotationId(ctx context.Context, quotationId uuid.UUID) error
}
