package handlers

import (
	"context"

	"github.com/iudanet/agendasync/internal/server/rules"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// PrincipalIDKey ключ для хранения principal_id в контексте
	PrincipalIDKey contextKey = "principal_id"
	// AdminKey ключ для хранения admin claim в контексте
	AdminKey contextKey = "admin"
)

// WithPrincipal кладет данные из токена в контекст
func WithPrincipal(ctx context.Context, principalID string, admin bool) context.Context {
	ctx = context.WithValue(ctx, PrincipalIDKey, principalID)
	return context.WithValue(ctx, AdminKey, admin)
}

// GetPrincipalID извлекает principal_id из контекста запроса
func GetPrincipalID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PrincipalIDKey).(string)
	return id, ok && id != ""
}

// AuthFromContext возвращает вызывающего для проверок rules. nil если запрос без токена
func AuthFromContext(ctx context.Context) *rules.Auth {
	id, ok := GetPrincipalID(ctx)
	if !ok {
		return nil
	}
	admin, _ := ctx.Value(AdminKey).(bool)
	return &rules.Auth{PrincipalID: id, Admin: admin}
}
