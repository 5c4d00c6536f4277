package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string
type ActivityStatus string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeTask    ActivityType = "task"

	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusCompleted ActivityStatus = "completed"
	ActivityStatusOverdue   ActivityStatus = "overdue"
	ActivityStatusCanceled  ActivityStatus = "canceled"
)

type SalesActivity struct {
	Id           uuid.UUID
	Subject      string
	ActivityType ActivityType
	Status       ActivityStatus
	Notes        *string
	LeadId       *uuid.UUID
	AccountId    *uuid.UUID
	AssignedTo   uuid.UUID
	DueAt        *time.Time
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
