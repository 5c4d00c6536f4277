package dto

import "github.com/google/uuid"

type QuotationLineRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	ProductCode *string `json:"product_code"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"required,gt=0"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"` // percent
}

type CreateQuotationRequest struct {
	AccountId  uuid.UUID              `json:"account_id" validate:"required"`
	ContactId  *uuid.UUID             `json:"contact_id"`
	ValidUntil *string                `json:"valid_until"` // RFC3339
	Products   []QuotationLineRequest `json:"products" validate:"required,min=1,dive"`
}

type CreateQuotationResponse struct {
	Id          uuid.UUID `json:"id"`
	QuoteNumber string    `json:"quote_number"`
	TotalAmount float64   `json:"total_amount"`
}

type QuotationLineResponse struct {
	ProductName string  `json:"product_name"`
	ProductCode *string `json:"product_code,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	LineTotal   float64 `json:"line_total"`
}

type QuotationResponse struct {
	Id          uuid.UUID               `json:"id"`
	QuoteNumber string                  `json:"quote_number"`
	AccountId   uuid.UUID               `json:"account_id"`
	ContactId   *uuid.UUID              `json:"contact_id,omitempty"`
	Status      string                  `json:"status"`
	TotalAmount float64                 `json:"total_amount"`
	ValidUntil  *string                 `json:"valid_until,omitempty"`
	CreatedBy   uuid.UUID               `json:"created_by"`
	CreatedAt   string                  `json:"created_at"`
	Products    []QuotationLineResponse `json:"products"`
}

type SendQuotationRequest struct {
	Id      uuid.UUID
	ToEmail string `json:"to_email" validate:"required,email"`
}

type SendQuotationResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ListQuotationsQuery struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
