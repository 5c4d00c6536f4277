package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null;index"`
	Industry        string    `gorm:"type:varchar(100);index"`
	Region          string    `gorm:"type:varchar(100);index"`
	Website         *string   `gorm:"type:varchar(255)"`
	EngagementScore float64   `gorm:"type:numeric(5,2);default:0"`
	OwnerId         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Account) TableName() string {
	return "accounts"
}
