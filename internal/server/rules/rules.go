// Package rules проверяет доступ к документам на уровне хранилища.
// Сервисы вызывают эти проверки внутри транзакции перед записью,
// поэтому ошибка в сервисе не может обойти правила.
package rules

import (
	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/rbac"
)

// Auth - аутентифицированный вызывающий. nil означает анонимный запрос без токена
type Auth struct {
	PrincipalID string
	Admin       bool // platform admin claim
}

func requireAuth(auth *Auth) error {
	if auth == nil || auth.PrincipalID == "" {
		return apperr.Unauthenticated("sign in required")
	}
	return nil
}

// CanReadGroup разрешает чтение документов группы только ее участникам
func CanReadGroup(auth *Auth, m *models.Membership) error {
	if err := requireAuth(auth); err != nil {
		return err
	}
	if m == nil || m.PrincipalID != auth.PrincipalID {
		return apperr.PermissionDenied("not a member of this group")
	}
	if !rbac.Can(m.Role, rbac.ActionRead) {
		return apperr.PermissionDenied("role cannot read agendas")
	}
	return nil
}

// CanWriteMembership проверяет запись членства target.
// existing - текущая запись (nil если ее нет), newRole - роль после записи,
// caller - членство вызывающего в той же группе (может быть nil).
// Сам себе участник может только создать запись с ролью editor или
// обновить ее без смены роли. Чужие записи меняет platform admin или admin группы
func CanWriteMembership(auth *Auth, caller *models.Membership, targetID string, existing *models.Membership, newRole models.Role) error {
	if err := requireAuth(auth); err != nil {
		return err
	}
	if _, ok := models.ParseRole(string(newRole)); !ok {
		return apperr.InvalidArgument("unknown role " + string(newRole))
	}

	if auth.PrincipalID == targetID {
		if existing == nil && newRole == models.RoleEditor {
			return nil
		}
		if existing != nil && existing.Role == newRole {
			return nil
		}
		if !auth.Admin {
			return apperr.PermissionDenied("cannot change own role")
		}
		return nil
	}

	if auth.Admin {
		return nil
	}
	if caller != nil && caller.PrincipalID == auth.PrincipalID && rbac.Can(caller.Role, rbac.ActionManageMembers) {
		return nil
	}
	return apperr.PermissionDenied("only group admins can change roles")
}

// CheckAgendaWrite проверяет запись документа: вызывающий участник с правом записи,
// версия ровно на единицу больше текущей (1 при создании)
func CheckAgendaWrite(auth *Auth, m *models.Membership, current *models.Agenda, newVersion int64) error {
	if err := requireAuth(auth); err != nil {
		return err
	}
	if m == nil || m.PrincipalID != auth.PrincipalID || !rbac.Can(m.Role, rbac.ActionWrite) {
		return apperr.PermissionDenied("not allowed to write agendas in this group")
	}

	want := int64(1)
	if current != nil {
		want = current.Version + 1
	}
	if newVersion != want {
		return apperr.Conflict("version mismatch")
	}
	return nil
}
