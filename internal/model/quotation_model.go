package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quotation struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuoteNumber string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	AccountId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContactId   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(50);not null;default:'draft';index"`
	TotalAmount float64    `gorm:"type:numeric(14,2);default:0"`
	ValidUntil  *time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Quotation) TableName() string {
	return "quotations"
}

type QuotationProduct struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuotationId uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	ProductCode *string   `gorm:"type:varchar(100)"`
	Quantity    int       `gorm:"not null;default:1"`
	UnitPrice   float64   `gorm:"type:numeric(14,2);not null"`
	Discount    float64   `gorm:"type:numeric(5,2);default:0"`
	LineTotal   float64   `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (QuotationProduct) TableName() string {
	return "quotation_products"
}
