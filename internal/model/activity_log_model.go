package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action     string         `gorm:"type:varchar(100);not null;index"`
	ObjectType string         `gorm:"type:varchar(100);not null;index"`
	ObjectId   uuid.UUID      `gorm:"type:uuid;index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
