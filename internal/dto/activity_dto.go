package dto

import "github.com/google/uuid"

type ActivityLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	ActorId    uuid.UUID              `json:"actor_id"`
	Action     string                 `json:"action"`
	ObjectType string                 `json:"object_type"`
	ObjectId   uuid.UUID              `json:"object_id"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  string                 `json:"created_at"`
}

type ListActivityLogsResponse struct {
	Logs  []*ActivityLogResponse `json:"logs"`
	Total int64                  `json:"total"`
}

type ListActivityLogsQuery struct {
	Action     string `query:"action"`
	ObjectType string `query:"object_type"`
	Since      string `query:"since"` // RFC3339
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}
