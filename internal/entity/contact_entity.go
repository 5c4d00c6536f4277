package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
)

type Contact struct {
	Id        uuid.UUID
	AccountId *uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Title     *string
	Status    ContactStatus
	OwnerId   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
