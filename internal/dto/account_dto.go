package dto

import "github.com/google/uuid"

type CreateAccountRequest struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Industry        string  `json:"industry"`
	Region          string  `json:"region"`
	Website         *string `json:"website" validate:"omitempty,url"`
	EngagementScore float64 `json:"engagement_score" validate:"gte=0,lte=100"`
}

type CreateAccountResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateAccountRequest struct {
	Id              uuid.UUID
	Name            string  `json:"name" validate:"required,min=2"`
	Industry        string  `json:"industry"`
	Region          string  `json:"region"`
	Website         *string `json:"website" validate:"omitempty,url"`
	EngagementScore float64 `json:"engagement_score" validate:"gte=0,lte=100"`
}

type UpdateAccountResponse struct {
	Id uuid.UUID `json:"id"`
}

type AccountResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Industry        string    `json:"industry"`
	Region          string    `json:"region"`
	Website         *string   `json:"website,omitempty"`
	EngagementScore float64   `json:"engagement_score"`
	OwnerId         uuid.UUID `json:"owner_id"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

type ListAccountsQuery struct {
	Region   string `query:"region"`
	Industry string `query:"industry"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}
