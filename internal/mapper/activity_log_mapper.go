package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		// Malformed rows degrade to a nil map rather than failing the read
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.ActivityLog{
		Id:         l.Id,
		ActorId:    l.ActorId,
		Action:     l.Action,
		ObjectType: l.ObjectType,
		ObjectId:   l.ObjectId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(l *entity.ActivityLog) *model.ActivityLog {
	if l == nil {
		return nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = raw
		}
	}
	return &model.ActivityLog{
		Id:         l.Id,
		ActorId:    l.ActorId,
		Action:     l.Action,
		ObjectType: l.ObjectType,
		ObjectId:   l.ObjectId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
