package entity

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	Id              uuid.UUID
	Name            string
	Industry        string
	Region          string
	Website         *string
	EngagementScore float64
	OwnerId         uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
