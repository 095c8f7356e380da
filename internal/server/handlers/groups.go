package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/rules"
	"github.com/iudanet/agendasync/pkg/api"
)

// GroupService - операции membership gate, которые использует handler
//
//go:generate moq -out group_service_mock_test.go . GroupService
type GroupService interface {
	CreateGroup(ctx context.Context, auth *rules.Auth, name, groupCode, secret string) (*models.Group, error)
	JoinGroup(ctx context.Context, auth *rules.Auth, groupCode, secret string) (*models.Membership, error)
	SetMemberRole(ctx context.Context, auth *rules.Auth, groupID, principalID string, role models.Role) error
	GetMembership(ctx context.Context, auth *rules.Auth, groupID, principalID string) (*models.Membership, error)
}

// GroupHandler обрабатывает запросы групп и членства
type GroupHandler struct {
	logger  *slog.Logger
	service GroupService
}

// NewGroupHandler создает handler групп
func NewGroupHandler(logger *slog.Logger, service GroupService) *GroupHandler {
	return &GroupHandler{
		logger:  logger,
		service: service,
	}
}

// Create обрабатывает POST /api/v1/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(h.logger, w, err)
		return
	}

	group, err := h.service.CreateGroup(ctx, AuthFromContext(ctx), req.Name, req.GroupCode, req.Secret)
	if err != nil {
		handleServiceError(ctx, h.logger, w, "create group", err)
		return
	}

	sendJSON(h.logger, w, api.CreateGroupResponse{GroupID: group.ID}, http.StatusCreated)
}

// Join обрабатывает POST /api/v1/groups/join
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.JoinGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(h.logger, w, err)
		return
	}

	m, err := h.service.JoinGroup(ctx, AuthFromContext(ctx), req.GroupCode, req.Secret)
	if err != nil {
		handleServiceError(ctx, h.logger, w, "join group", err)
		return
	}

	sendJSON(h.logger, w, api.JoinGroupResponse{
		GroupID: m.GroupID,
		Role:    string(m.Role),
	}, http.StatusOK)
}

// SetRole обрабатывает PUT /api/v1/groups/{group}/members/{principal}/role
func (h *GroupHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SetRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(h.logger, w, err)
		return
	}

	groupID := r.PathValue("group")
	principalID := r.PathValue("principal")

	if err := h.service.SetMemberRole(ctx, AuthFromContext(ctx), groupID, principalID, models.Role(req.Role)); err != nil {
		handleServiceError(ctx, h.logger, w, "set member role", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMembership обрабатывает GET /api/v1/groups/{group}/members/{principal}
func (h *GroupHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m, err := h.service.GetMembership(ctx, AuthFromContext(ctx), r.PathValue("group"), r.PathValue("principal"))
	if err != nil {
		handleServiceError(ctx, h.logger, w, "get membership", err)
		return
	}

	sendJSON(h.logger, w, toAPIMembership(m), http.StatusOK)
}

func toAPIMembership(m *models.Membership) api.Membership {
	return api.Membership{
		GroupID:      m.GroupID,
		PrincipalID:  m.PrincipalID,
		Role:         string(m.Role),
		JoinedAt:     m.JoinedAt,
		LastActiveAt: m.LastActiveAt,
	}
}
