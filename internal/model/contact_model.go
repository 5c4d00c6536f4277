package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountId *uuid.UUID `gorm:"type:uuid;index"`
	FirstName string     `gorm:"type:varchar(100);not null"`
	LastName  string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(255);index"`
	Phone     *string    `gorm:"type:varchar(50)"`
	Title     *string    `gorm:"type:varchar(100)"`
	Status    string     `gorm:"type:varchar(50);not null;default:'active';index"`
	OwnerId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Contact) TableName() string {
	return "contacts"
}
