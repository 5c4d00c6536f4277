package mapper

import (
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:             l.Id,
		ContactId:      l.ContactId,
		AccountId:      l.AccountId,
		Source:         l.Source,
		Stage:          entity.LeadStage(l.Stage),
		Status:         entity.LeadStatus(l.Status),
		EstimatedValue: l.EstimatedValue,
		AssignedTo:     l.AssignedTo,
		ClosedAt:       l.ClosedAt,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:             l.Id,
		ContactId:      l.ContactId,
		AccountId:      l.AccountId,
		Source:         l.Source,
		Stage:          string(l.Stage),
		Status:         string(l.Status),
		EstimatedValue: l.EstimatedValue,
		AssignedTo:     l.AssignedTo,
		ClosedAt:       l.ClosedAt,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
