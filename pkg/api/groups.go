package api

import "time"

// CreateGroupRequest представляет запрос на создание группы (только admin)
type CreateGroupRequest struct {
	Name      string `json:"name"`
	GroupCode string `json:"group_code"`
	Secret    string `json:"secret"`
}

// CreateGroupResponse представляет ответ на создание группы
type CreateGroupResponse struct {
	GroupID string `json:"group_id"`
}

// JoinGroupRequest представляет запрос на вступление в группу
type JoinGroupRequest struct {
	GroupCode string `json:"group_code"`
	Secret    string `json:"secret"`
}

// JoinGroupResponse представляет ответ на успешное вступление
type JoinGroupResponse struct {
	GroupID string `json:"group_id"`
	Role    string `json:"role"`
}

// SetRoleRequest представляет запрос на смену роли участника
type SetRoleRequest struct {
	Role string `json:"role"`
}

// Membership представляет членство principal в группе
type Membership struct {
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	GroupID      string    `json:"group_id"`
	PrincipalID  string    `json:"principal_id"`
	Role         string    `json:"role"`
}
