package models

import "time"

// Role роль участника группы
type Role string

const (
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ParseRole разбирает роль; ok=false для неизвестных значений
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEditor, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Group представляет группу (ward), объединяющую устройства
// ID совпадает с нормализованным кодом группы
type Group struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SecretHash string    `json:"-"` // hex хеш секрета
	SecretSalt string    `json:"-"` // hex соль
	CreatedBy  string    `json:"created_by"`
}

// Membership представляет членство principal в группе
type Membership struct {
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	GroupID      string    `json:"group_id"`
	PrincipalID  string    `json:"principal_id"`
	Role         Role      `json:"role"`
}
