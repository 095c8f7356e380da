// Package gate реализует вход в группы: создание группы, вступление по секрету
// и управление ролями участников.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/crypto"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/rules"
	"github.com/iudanet/agendasync/internal/server/storage"
	"github.com/iudanet/agendasync/internal/validation"
)

// Service membership gate
type Service struct {
	groups storage.GroupStorage
	logger *slog.Logger
	now    func() time.Time
	params crypto.Params
}

// NewService создает gate поверх хранилища групп
func NewService(groups storage.GroupStorage, params crypto.Params, logger *slog.Logger) *Service {
	return &Service{
		groups: groups,
		params: params,
		logger: logger,
		now:    time.Now,
	}
}

func requireSignedIn(auth *rules.Auth) error {
	if auth == nil || auth.PrincipalID == "" {
		return apperr.Unauthenticated("sign in required")
	}
	return nil
}

// CreateGroup создает группу с солью и хешем секрета. Только platform admin
func (s *Service) CreateGroup(ctx context.Context, auth *rules.Auth, name, groupCode, secret string) (*models.Group, error) {
	if err := requireSignedIn(auth); err != nil {
		return nil, err
	}
	if !auth.Admin {
		return nil, apperr.PermissionDenied("admin only")
	}

	name = strings.TrimSpace(name)
	code := validation.NormalizeGroupCode(groupCode)
	secret = strings.TrimSpace(secret)

	if err := validation.ValidateGroupName(name); err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}
	if err := validation.ValidateGroupCode(code); err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}

	hash, salt, err := crypto.HashSecret(secret, s.params)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}

	group := &models.Group{
		ID:         code,
		Name:       name,
		SecretHash: hash,
		SecretSalt: salt,
		CreatedAt:  s.now(),
		CreatedBy:  auth.PrincipalID,
	}

	if err := s.groups.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, storage.ErrGroupAlreadyExists) {
			return nil, apperr.AlreadyExists("group code already taken")
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.InfoContext(ctx, "group created",
		slog.String("group_id", group.ID),
		slog.String("created_by", auth.PrincipalID))

	return group, nil
}

// JoinGroup проверяет секрет группы и создает (или освежает) членство вызывающего.
// При неверном секрете членство не создается и не изменяется
func (s *Service) JoinGroup(ctx context.Context, auth *rules.Auth, groupCode, secret string) (*models.Membership, error) {
	if err := requireSignedIn(auth); err != nil {
		return nil, err
	}

	code := validation.NormalizeGroupCode(groupCode)
	secret = strings.TrimSpace(secret)
	if code == "" || secret == "" {
		return nil, apperr.InvalidArgument("group code and secret are required")
	}

	group, err := s.groups.GetGroup(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			return nil, apperr.NotFound("group not found")
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := crypto.VerifySecret(secret, group.SecretHash, group.SecretSalt, s.params); err != nil {
		if errors.Is(err, crypto.ErrSecretMismatch) {
			s.logger.WarnContext(ctx, "join rejected: invalid secret",
				slog.String("group_id", group.ID),
				slog.String("principal_id", auth.PrincipalID))
			return nil, apperr.PermissionDenied("invalid secret")
		}
		return nil, fmt.Errorf("failed to verify secret: %w", err)
	}

	existing, err := s.groups.GetMembership(ctx, group.ID, auth.PrincipalID)
	if err != nil && !errors.Is(err, storage.ErrMemberNotFound) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	role := models.RoleEditor
	if existing != nil {
		role = existing.Role
	}
	if err := rules.CanWriteMembership(auth, existing, auth.PrincipalID, existing, role); err != nil {
		return nil, err
	}

	now := s.now()
	m, err := s.groups.UpsertMembership(ctx, &models.Membership{
		GroupID:      group.ID,
		PrincipalID:  auth.PrincipalID,
		Role:         role,
		JoinedAt:     now,
		LastActiveAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	s.logger.InfoContext(ctx, "principal joined group",
		slog.String("group_id", m.GroupID),
		slog.String("principal_id", m.PrincipalID),
		slog.String("role", string(m.Role)))

	return m, nil
}

// SetMemberRole меняет роль участника. Доступно platform admin и admin группы,
// собственную роль поменять нельзя
func (s *Service) SetMemberRole(ctx context.Context, auth *rules.Auth, groupID, principalID string, role models.Role) error {
	if err := requireSignedIn(auth); err != nil {
		return err
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return apperr.InvalidArgument("unknown role " + string(role))
	}

	groupID = validation.NormalizeGroupCode(groupID)
	if _, err := s.groups.GetGroup(ctx, groupID); err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			return apperr.NotFound("group not found")
		}
		return fmt.Errorf("failed to get group: %w", err)
	}

	caller, err := s.lookupMembership(ctx, groupID, auth.PrincipalID)
	if err != nil {
		return err
	}
	target, err := s.lookupMembership(ctx, groupID, principalID)
	if err != nil {
		return err
	}

	// права проверяем раньше существования цели, чтобы не раскрывать состав группы
	if err := rules.CanWriteMembership(auth, caller, principalID, target, role); err != nil {
		return err
	}
	if target == nil {
		return apperr.NotFound("member not found")
	}

	if err := s.groups.SetMemberRole(ctx, groupID, principalID, role); err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			return apperr.NotFound("member not found")
		}
		return fmt.Errorf("failed to set role: %w", err)
	}

	s.logger.InfoContext(ctx, "member role changed",
		slog.String("group_id", groupID),
		slog.String("principal_id", principalID),
		slog.String("role", string(role)),
		slog.String("changed_by", auth.PrincipalID))

	return nil
}

// GetMembership возвращает членство principalID. Читать могут только участники группы
func (s *Service) GetMembership(ctx context.Context, auth *rules.Auth, groupID, principalID string) (*models.Membership, error) {
	if err := requireSignedIn(auth); err != nil {
		return nil, err
	}

	groupID = validation.NormalizeGroupCode(groupID)
	caller, err := s.lookupMembership(ctx, groupID, auth.PrincipalID)
	if err != nil {
		return nil, err
	}
	if err := rules.CanReadGroup(auth, caller); err != nil {
		return nil, err
	}

	if principalID == auth.PrincipalID {
		return caller, nil
	}

	target, err := s.lookupMembership(ctx, groupID, principalID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperr.NotFound("member not found")
	}
	return target, nil
}

// lookupMembership возвращает nil без ошибки, если членства нет
func (s *Service) lookupMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error) {
	m, err := s.groups.GetMembership(ctx, groupID, principalID)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}
