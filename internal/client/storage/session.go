package storage

import "context"

// SessionStorage хранит группу, в которую вступило устройство.
// Каждый запуск CLI - отдельный процесс, поэтому сессия переживает перезапуск
type SessionStorage interface {
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession returns ErrSessionNotFound if the device has not joined a group
	GetSession(ctx context.Context) (*SessionData, error)

	DeleteSession(ctx context.Context) error
}

// SessionData членство устройства, подтвержденное сервером
type SessionData struct {
	GroupID string `json:"group_id"`
	Role    string `json:"role"`
}
