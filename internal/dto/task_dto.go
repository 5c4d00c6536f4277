package dto

import "github.com/google/uuid"

type CreateTaskRequest struct {
	Subject      string     `json:"subject" validate:"required,min=2"`
	ActivityType string     `json:"activity_type" validate:"required,oneof=call email meeting task"`
	Notes        *string    `json:"notes"`
	LeadId       *uuid.UUID `json:"lead_id"`
	AccountId    *uuid.UUID `json:"account_id"`
	DueAt        *string    `json:"due_at"` // RFC3339
}

type CreateTaskResponse struct {
	Id uuid.UUID `json:"id"`
}

type CompleteTaskRequest struct {
	Id    uuid.UUID
	Notes *string `json:"notes"`
}

type CompleteTaskResponse struct {
	Id          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	CompletedAt string    `json:"completed_at"`
}

type TaskResponse struct {
	Id           uuid.UUID  `json:"id"`
	Subject      string     `json:"subject"`
	ActivityType string     `json:"activity_type"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	LeadId       *uuid.UUID `json:"lead_id,omitempty"`
	AccountId    *uuid.UUID `json:"account_id,omitempty"`
	AssignedTo   uuid.UUID  `json:"assigned_to"`
	DueAt        *string    `json:"due_at,omitempty"`
	CompletedAt  *string    `json:"completed_at,omitempty"`
	CreatedAt    string     `json:"created_at"`
}

type ListTasksQuery struct {
	Status    string `query:"status"`
	Type      string `query:"type"`
	DueBefore string `query:"due_before"` // RFC3339
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
