package mapper

import (
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

type AccountMapper struct{}

func NewAccountMapper() *AccountMapper {
	return &AccountMapper{}
}

func (m *AccountMapper) ToEntity(a *model.Account) *entity.Account {
	if a == nil {
		return nil
	}
	return &entity.Account{
		Id:              a.Id,
		Name:            a.Name,
		Industry:        a.Industry,
		Region:          a.Region,
		Website:         a.Website,
		EngagementScore: a.EngagementScore,
		OwnerId:         a.OwnerId,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AccountMapper) ToModel(a *entity.Account) *model.Account {
	if a == nil {
		return nil
	}
	return &model.Account{
		Id:              a.Id,
		Name:            a.Name,
		Industry:        a.Industry,
		Region:          a.Region,
		Website:         a.Website,
		EngagementScore: a.EngagementScore,
		OwnerId:         a.OwnerId,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *AccountMapper) ToEntities(accounts []*model.Account) []*entity.Account {
	entities := make([]*entity.Account, len(accounts))
	for i, a := range accounts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
