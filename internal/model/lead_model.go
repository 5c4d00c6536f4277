package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lead struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContactId      *uuid.UUID `gorm:"type:uuid;index"`
	AccountId      *uuid.UUID `gorm:"type:uuid;index"`
	Source         string     `gorm:"type:varchar(100);index"`
	Stage          string     `gorm:"type:varchar(50);not null;default:'new';index"`
	Status         string     `gorm:"type:varchar(50);not null;default:'open';index"`
	EstimatedValue float64    `gorm:"type:numeric(14,2);default:0"`
	AssignedTo     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClosedAt       *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Lead) TableName() string {
	return "leads"
}
