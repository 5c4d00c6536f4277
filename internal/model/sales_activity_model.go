package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalesActivity struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subject      string     `gorm:"type:varchar(255);not null"`
	ActivityType string     `gorm:"type:varchar(50);not null;index"`
	Status       string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	Notes        *string    `gorm:"type:text"`
	LeadId       *uuid.UUID `gorm:"type:uuid;index"`
	AccountId    *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DueAt        *time.Time `gorm:"index"`
	CompletedAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (SalesActivity) TableName() string {
	return "sales_activities"
}
