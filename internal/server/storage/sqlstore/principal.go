package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/storage"
)

// CreatePrincipal stores a new principal
func (s *Store) CreatePrincipal(ctx context.Context, p *models.Principal) error {
	query := s.q(`INSERT INTO principals (id, admin, created_at) VALUES (?, ?, ?)`)

	if _, err := s.db.ExecContext(ctx, query, p.ID, p.Admin, toMillis(p.CreatedAt)); err != nil {
		return fmt.Errorf("failed to create principal: %w", err)
	}

	return nil
}

// GetPrincipal retrieves principal by ID
func (s *Store) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	query := s.q(`SELECT id, admin, created_at FROM principals WHERE id = ?`)

	p := &models.Principal{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Admin, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}
	p.CreatedAt = fromMillis(createdAt)

	return p, nil
}
