package service

import (
	"github.com/google/uuid"

	"sales-crm-be/internal/repository/specification"
	"sales-crm-be/pkg/nlquery"
)

// ownershipSpecs returns the row-level scoping specs for a caller. Admin
// and manager roles see everything; everyone else only their own rows.
// The same rule the query planner applies when building SQL.
func ownershipSpecs(ownerColumn string, userId uuid.UUID, role string) []specification.Specification {
	if nlquery.NewUserContext(userId, nil, role).Privileged() {
		return nil
	}
	return []specification.Specification{
		specification.OwnedBy{Column: ownerColumn, OwnerID: userId},
	}
}

// isPrivileged reports whether the role sees past ownership scoping.
func isPrivileged(role string) bool {
	return nlquery.NewUserContext(uuid.Nil, nil, role).Privileged()
}

// canAccess reports whether the caller may touch a row owned by ownerId.
func canAccess(ownerId, userId uuid.UUID, role string) bool {
	if nlquery.NewUserContext(userId, nil, role).Privileged() {
		return true
	}
	return ownerId == userId
}
