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

// SaveRefreshToken stores a new refresh token
func (s *Store) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query := s.q(`
		INSERT INTO refresh_tokens (token, principal_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (token) DO UPDATE SET
			principal_id = excluded.principal_id,
			expires_at = excluded.expires_at,
			created_at = excluded.created_at
	`)

	_, err := s.db.ExecContext(ctx, query,
		token.Token,
		token.PrincipalID,
		toMillis(token.ExpiresAt),
		toMillis(token.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves refresh token by token value
func (s *Store) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := s.q(`
		SELECT token, principal_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token = ?
	`)

	rt := &models.RefreshToken{}
	var expiresAt, createdAt int64

	err := s.db.QueryRowContext(ctx, query, token).Scan(&rt.Token, &rt.PrincipalID, &expiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	rt.ExpiresAt = fromMillis(expiresAt)
	rt.CreatedAt = fromMillis(createdAt)

	return rt, nil
}

// DeleteRefreshToken deletes refresh token by token value
func (s *Store) DeleteRefreshToken(ctx context.Context, token string) error {
	result, err := s.db.ExecContext(ctx, s.q(`DELETE FROM refresh_tokens WHERE token = ?`), token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredTokens removes all expired tokens
func (s *Store) DeleteExpiredTokens(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, s.q(`DELETE FROM refresh_tokens WHERE expires_at < ?`), time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
