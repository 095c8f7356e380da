// Package rbac сопоставляет роли участников группы с разрешенными действиями.
package rbac

import "github.com/iudanet/agendasync/internal/models"

type Action string

const (
	ActionRead Action = "read"
	// ActionWrite - обычная CAS запись документа
	ActionWrite Action = "write"
	// ActionForceWrite - запись без проверки версии
	ActionForceWrite Action = "force_write"
	// ActionManageMembers - смена ролей других участников
	ActionManageMembers Action = "manage_members"
)

// Can сообщает, разрешено ли действие роли
func Can(role models.Role, action Action) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleEditor:
		return action == ActionRead || action == ActionWrite
	default:
		return false
	}
}
