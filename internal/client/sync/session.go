package sync

import (
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/rbac"
)

// Session - членство устройства в группе, подтвержденное сервером.
// Значение принадлежит вызывающему и передается в каждую операцию
type Session struct {
	GroupID string
	Role    models.Role
}

// Joined сообщает, есть ли у сессии группа
func (s *Session) Joined() bool {
	return s != nil && s.GroupID != ""
}

// Admin сообщает, может ли участник перезаписывать документы без проверки версии
func (s *Session) Admin() bool {
	return s.Joined() && rbac.Can(s.Role, rbac.ActionForceWrite)
}
