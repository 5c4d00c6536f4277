package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStage string
type LeadStatus string

const (
	LeadStageNew         LeadStage = "new"
	LeadStageQualified   LeadStage = "qualified"
	LeadStageProposal    LeadStage = "proposal"
	LeadStageNegotiation LeadStage = "negotiation"
	LeadStageClosedWon   LeadStage = "closed_won"
	LeadStageClosedLost  LeadStage = "closed_lost"

	LeadStatusOpen   LeadStatus = "open"
	LeadStatusClosed LeadStatus = "closed"
)

type Lead struct {
	Id             uuid.UUID
	ContactId      *uuid.UUID
	AccountId      *uuid.UUID
	Source         string
	Stage          LeadStage
	Status         LeadStatus
	EstimatedValue float64
	AssignedTo     uuid.UUID
	ClosedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
