package mapper

import (
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

type SalesActivityMapper struct{}

func NewSalesActivityMapper() *SalesActivityMapper {
	return &SalesActivityMapper{}
}

func (m *SalesActivityMapper) ToEntity(a *model.SalesActivity) *entity.SalesActivity {
	if a == nil {
		return nil
	}
	return &entity.SalesActivity{
		Id:           a.Id,
		Subject:      a.Subject,
		ActivityType: entity.ActivityType(a.ActivityType),
		Status:       entity.ActivityStatus(a.Status),
		Notes:        a.Notes,
		LeadId:       a.LeadId,
		AccountId:    a.AccountId,
		AssignedTo:   a.AssignedTo,
		DueAt:        a.DueAt,
		CompletedAt:  a.CompletedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *SalesActivityMapper) ToModel(a *entity.SalesActivity) *model.SalesActivity {
	if a == nil {
		return nil
	}
	return &model.SalesActivity{
		Id:           a.Id,
		Subject:      a.Subject,
		ActivityType: string(a.ActivityType),
		Status:       string(a.Status),
		Notes:        a.Notes,
		LeadId:       a.LeadId,
		AccountId:    a.AccountId,
		AssignedTo:   a.AssignedTo,
		DueAt:        a.DueAt,
		CompletedAt:  a.CompletedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *SalesActivityMapper) ToEntities(activities []*model.SalesActivity) []*entity.SalesActivity {
	entities := make([]*entity.SalesActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
