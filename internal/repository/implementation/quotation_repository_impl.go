package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/mapper"
	"sales-crm-be/internal/model"
	"sales-crm-be/internal/repository/contract"
	"sales-crm-be/internal/repository/specification"
)

type QuotationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuotationMapper
}

func NewQuotationRepository(db *gorm.DB) contract.QuotationRepository {
	return &QuotationRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuotationMapper(),
	}
}

func (r *QuotationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuotationRepositoryImpl) Create(ctx context.Context, quotation *entity.Quotation) error {
	m := r.mapper.ToModel(quotation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	products := quotation.Products
	*quotation = *r.mapper.ToEntity(m)
	quotation.Products = products
	return nil
}

func (r *QuotationRepositoryImpl) Update(ctx context.Context, quotation *entity.Quotation) error {
	m := r.mapper.ToModel(quotation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	products := quotation.Products
	*quotation = *r.mapper.ToEntity(m)
	quotation.Products = products
	return nil
}

func (r *QuotationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Quotation{}, id).Error
}

func (r *QuotationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Quotation, error) {
	var m model.Quotation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QuotationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quotation, error) {
	var models []*model.Quotation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuotationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Quotation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QuotationRepositoryImpl) CreateProduct(ctx context.Context, product *entity.QuotationProduct) error {
	m := r.mapper.ProductToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ProductToEntity(m)
	return nil
}

func (r *QuotationRepositoryImpl) FindProducts(ctx context.Context, quotationId uuid.UUID) ([]*entity.QuotationProduct, error) {
	var models []*model.QuotationProduct
	db := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByQuotationID{QuotationID: quotationId},
		specification.OrderBy{Field: "created_at"},
	)
	err := db.Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ProductsToEntities(models), nil
}

func (r *QuotationRepositoryImpl) DeleteProductsByQuotationId(ctx context.Context, quotationId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationId).
		Delete(&model.QuotationProduct{}).Error
}
