package storage

import (
	"context"
	"time"
)

// AuthStorage defines interface for storing the anonymous identity on client
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data
	DeleteAuth(ctx context.Context) error
}

// AuthData represents the anonymous identity in storage
type AuthData struct {
	PrincipalID  string `json:"principal_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
	Admin        bool   `json:"admin"`
}

// Expired сообщает, истек ли access token к моменту now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(time.Unix(a.ExpiresAt, 0))
}
