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

type SalesActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesActivityMapper
}

func NewSalesActivityRepository(db *gorm.DB) contract.SalesActivityRepository {
	return &SalesActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesActivityMapper(),
	}
}

func (r *SalesActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SalesActivityRepositoryImpl) Create(ctx context.Context, activity *entity.SalesActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalesActivityRepositoryImpl) Update(ctx context.Context, activity *entity.SalesActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *SalesActivityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SalesActivity{}, id).Error
}

func (r *SalesActivityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SalesActivity, error) {
	var m model.SalesActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SalesActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SalesActivity, error) {
	var models []*model.SalesActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SalesActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SalesActivity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
