package dto

import "github.com/google/uuid"

type CreateLeadRequest struct {
	ContactId      *uuid.UUID `json:"contact_id"`
	AccountId      *uuid.UUID `json:"account_id"`
	Source         string     `json:"source"`
	Stage          string     `json:"stage" validate:"omitempty,oneof=new qualified proposal negotiation closed_won closed_lost"`
	EstimatedValue float64    `json:"estimated_value" validate:"gte=0"`
}

type CreateLeadResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateLeadStageRequest struct {
	Id    uuid.UUID
	Stage string `json:"stage" validate:"required,oneof=new qualified proposal negotiation closed_won closed_lost"`
}

type UpdateLeadStageResponse struct {
	Id     uuid.UUID `json:"id"`
	Stage  string    `json:"stage"`
	Status string    `json:"status"`
}

type LeadResponse struct {
	Id             uuid.UUID  `json:"id"`
	ContactId      *uuid.UUID `json:"contact_id,omitempty"`
	AccountId      *uuid.UUID `json:"account_id,omitempty"`
	Source         string     `json:"source"`
	Stage          string     `json:"stage"`
	Status         string     `json:"status"`
	EstimatedValue float64    `json:"estimated_value"`
	AssignedTo     uuid.UUID  `json:"assigned_to"`
	ClosedAt       *string    `json:"closed_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

type ListLeadsResponse struct {
	Leads         []*LeadResponse `json:"leads"`
	PipelineValue float64         `json:"pipeline_value"`
}

type ListLeadsQuery struct {
	Stage  string `query:"stage"`
	Status string `query:"status"`
	Source string `query:"source"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
