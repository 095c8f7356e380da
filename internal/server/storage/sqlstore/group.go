package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/storage"
)

// CreateGroup stores a new group
func (s *Store) CreateGroup(ctx context.Context, g *models.Group) error {
	query := s.q(`
		INSERT INTO groups (id, name, secret_hash, secret_salt, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := s.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.SecretHash,
		g.SecretSalt,
		toMillis(g.CreatedAt),
		g.CreatedBy,
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return storage.ErrGroupAlreadyExists
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetGroup retrieves group by ID
func (s *Store) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	query := s.q(`
		SELECT id, name, secret_hash, secret_salt, created_at, created_by
		FROM groups
		WHERE id = ?
	`)

	g := &models.Group{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID,
		&g.Name,
		&g.SecretHash,
		&g.SecretSalt,
		&createdAt,
		&g.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	g.CreatedAt = fromMillis(createdAt)

	return g, nil
}

// UpsertMembership creates membership or refreshes last_active_at of existing one
func (s *Store) UpsertMembership(ctx context.Context, m *models.Membership) (*models.Membership, error) {
	query := s.q(`
		INSERT INTO members (group_id, principal_id, role, joined_at, last_active_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (group_id, principal_id) DO UPDATE SET
			last_active_at = excluded.last_active_at
	`)

	_, err := s.db.ExecContext(ctx, query,
		m.GroupID,
		m.PrincipalID,
		string(m.Role),
		toMillis(m.JoinedAt),
		toMillis(m.LastActiveAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert membership: %w", err)
	}

	return getMembership(ctx, s.db, s.dialect, m.GroupID, m.PrincipalID)
}

// GetMembership retrieves membership
func (s *Store) GetMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error) {
	return getMembership(ctx, s.db, s.dialect, groupID, principalID)
}

// SetMemberRole changes role of existing member
func (s *Store) SetMemberRole(ctx context.Context, groupID, principalID string, role models.Role) error {
	query := s.q(`UPDATE members SET role = ? WHERE group_id = ? AND principal_id = ?`)

	result, err := s.db.ExecContext(ctx, query, string(role), groupID, principalID)
	if err != nil {
		return fmt.Errorf("failed to set member role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrMemberNotFound
	}

	return nil
}

func getMembership(ctx context.Context, q querier, d Dialect, groupID, principalID string) (*models.Membership, error) {
	query := d.Rebind(`
		SELECT group_id, principal_id, role, joined_at, last_active_at
		FROM members
		WHERE group_id = ? AND principal_id = ?
	`)

	m := &models.Membership{}
	var role string
	var joinedAt, lastActiveAt int64

	err := q.QueryRowContext(ctx, query, groupID, principalID).Scan(
		&m.GroupID,
		&m.PrincipalID,
		&role,
		&joinedAt,
		&lastActiveAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	m.Role = models.Role(role)
	m.JoinedAt = fromMillis(joinedAt)
	m.LastActiveAt = fromMillis(lastActiveAt)

	return m, nil
}

func touchMembership(ctx context.Context, q querier, d Dialect, groupID, principalID string, at time.Time) error {
	query := d.Rebind(`UPDATE members SET last_active_at = ? WHERE group_id = ? AND principal_id = ?`)

	if _, err := q.ExecContext(ctx, query, toMillis(at), groupID, principalID); err != nil {
		return fmt.Errorf("failed to touch membership: %w", err)
	}

	return nil
}
