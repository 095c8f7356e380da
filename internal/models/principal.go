package models

import "time"

// Principal представляет анонимную идентичность устройства
type Principal struct {
	CreatedAt time.Time `json:"created_at"` // время создания
	ID        string    `json:"id"`         // UUID principal
	Admin     bool      `json:"admin"`      // platform admin claim
}

// RefreshToken представляет refresh token principal
type RefreshToken struct {
	ExpiresAt   time.Time `json:"expires_at"`   // время истечения
	CreatedAt   time.Time `json:"created_at"`   // время создания
	Token       string    `json:"token"`        // значение токена
	PrincipalID string    `json:"principal_id"` // ID principal
}

// Identity - результат входа на клиенте: principal и его токены
type Identity struct {
	ExpiresAt    time.Time
	PrincipalID  string
	AccessToken  string
	RefreshToken string
	Admin        bool
}

// Valid сообщает, можно ли использовать access token в момент now
func (i *Identity) Valid(now time.Time) bool {
	return i != nil && i.AccessToken != "" && now.Before(i.ExpiresAt)
}
