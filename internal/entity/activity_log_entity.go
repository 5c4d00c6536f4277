package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id         uuid.UUID
	ActorId    uuid.UUID
	Action     string
	ObjectType string
	ObjectId   uuid.UUID
	Details    map[string]interface{}
	CreatedAt  time.Time
}
