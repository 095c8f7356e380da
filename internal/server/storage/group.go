package storage

import (
	"context"

	"github.com/iudanet/agendasync/internal/models"
)

// GroupStorage defines interface for groups and memberships
type GroupStorage interface {
	// CreateGroup stores a new group
	// Returns ErrGroupAlreadyExists if group with same ID exists
	CreateGroup(ctx context.Context, g *models.Group) error

	// GetGroup retrieves group by ID (normalized code)
	// Returns ErrGroupNotFound if group doesn't exist
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// UpsertMembership creates membership or refreshes LastActiveAt of existing one.
	// Role and JoinedAt of existing membership are kept. Returns stored membership
	UpsertMembership(ctx context.Context, m *models.Membership) (*models.Membership, error)

	// GetMembership retrieves membership
	// Returns ErrMemberNotFound if principal is not a member
	GetMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error)

	// SetMemberRole changes role of existing member
	// Returns ErrMemberNotFound if principal is not a member
	SetMemberRole(ctx context.Context, groupID, principalID string, role models.Role) error
}
