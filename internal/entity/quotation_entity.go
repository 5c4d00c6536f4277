package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

type Quotation struct {
	Id          uuid.UUID
	QuoteNumber string
	AccountId   uuid.UUID
	ContactId   *uuid.UUID
	Status      QuotationStatus
	TotalAmount float64
	ValidUntil  *time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded separately; not every read path hydrates these
	Products []*QuotationProduct
}

type QuotationProduct struct {
	Id          uuid.UUID
	QuotationId uuid.UUID
	ProductName string
	ProductCode *string
	Quantity    int
	UnitPrice   float64
	Discount    float64
	LineTotal   float64
	CreatedAt   time.Time
}
