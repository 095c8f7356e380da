package storage

import (
	"context"

	"github.com/iudanet/agendasync/internal/models"
)

// PrincipalStorage defines interface for anonymous principal persistence
type PrincipalStorage interface {
	// CreatePrincipal stores a new principal
	CreatePrincipal(ctx context.Context, p *models.Principal) error

	// GetPrincipal retrieves principal by ID
	// Returns ErrPrincipalNotFound if principal doesn't exist
	GetPrincipal(ctx context.Context, id string) (*models.Principal, error)
}
