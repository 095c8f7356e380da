package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/crypto"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/storage"
	"github.com/iudanet/agendasync/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger           *slog.Logger
	principalStorage storage.PrincipalStorage
	tokenStorage     storage.TokenStorage
	adminKey         string
	jwtConfig        JWTConfig
}

// NewAuthHandler создает новый handler для авторизации.
// adminKey - ключ, по которому анонимный вход получает admin claim; пустой отключает admin вход
func NewAuthHandler(logger *slog.Logger, principalStorage storage.PrincipalStorage, tokenStorage storage.TokenStorage, jwtConfig JWTConfig, adminKey string) *AuthHandler {
	return &AuthHandler{
		logger:           logger,
		principalStorage: principalStorage,
		tokenStorage:     tokenStorage,
		jwtConfig:        jwtConfig,
		adminKey:         adminKey,
	}
}

// SignInAnonymous обрабатывает POST /api/v1/auth/anonymous
// Создает новый principal и выдает ему токены
func (h *AuthHandler) SignInAnonymous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Тело опционально
	var req api.AnonymousSignInRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			h.logger.WarnContext(ctx, "failed to decode sign-in request", slog.Any("error", err))
			WriteError(h.logger, w, err)
			return
		}
	}

	admin := false
	if req.AdminKey != "" {
		if h.adminKey == "" || !crypto.ConstantTimeEqual(req.AdminKey, h.adminKey) {
			h.logger.WarnContext(ctx, "sign-in rejected: invalid admin key")
			WriteError(h.logger, w, apperr.PermissionDenied("invalid admin key"))
			return
		}
		admin = true
	}

	principal := &models.Principal{
		ID:        uuid.New().String(),
		Admin:     admin,
		CreatedAt: time.Now(),
	}

	if err := h.principalStorage.CreatePrincipal(ctx, principal); err != nil {
		h.logger.ErrorContext(ctx, "failed to create principal", slog.Any("error", err))
		WriteError(h.logger, w, err)
		return
	}

	resp, err := h.issueTokens(r, principal)
	if err != nil {
		WriteError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "anonymous principal signed in",
		slog.String("principal_id", principal.ID),
		slog.Bool("admin", admin))

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обновление access token с помощью refresh token
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Извлекаем refresh token из Authorization header
	refreshToken, ok := BearerToken(r)
	if !ok {
		WriteError(h.logger, w, apperr.Unauthenticated("refresh token is required"))
		return
	}

	// Проверяем refresh token в БД
	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			WriteError(h.logger, w, apperr.Unauthenticated("invalid refresh token"))
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		WriteError(h.logger, w, err)
		return
	}

	// Проверяем срок действия
	if time.Now().After(storedToken.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("principal_id", storedToken.PrincipalID))
		WriteError(h.logger, w, apperr.Unauthenticated("refresh token expired"))
		return
	}

	principal, err := h.principalStorage.GetPrincipal(ctx, storedToken.PrincipalID)
	if err != nil {
		if errors.Is(err, storage.ErrPrincipalNotFound) {
			WriteError(h.logger, w, apperr.Unauthenticated("principal no longer exists"))
			return
		}
		h.logger.ErrorContext(ctx, "failed to get principal", slog.Any("error", err))
		WriteError(h.logger, w, err)
		return
	}

	// Удаляем старый refresh token. Повторное использование невозможно
	if err := h.tokenStorage.DeleteRefreshToken(ctx, refreshToken); err != nil {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
	}

	resp, err := h.issueTokens(r, principal)
	if err != nil {
		WriteError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("principal_id", principal.ID))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

func (h *AuthHandler) issueTokens(r *http.Request, principal *models.Principal) (*api.TokenResponse, error) {
	ctx := r.Context()

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, principal.ID, principal.Admin)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		return nil, err
	}

	refreshToken, expiresAt, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		return nil, err
	}

	token := &models.RefreshToken{
		Token:       refreshToken,
		PrincipalID: principal.ID,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}
	if err := h.tokenStorage.SaveRefreshToken(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		return nil, err
	}

	return &api.TokenResponse{
		PrincipalID:  principal.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		Admin:        principal.Admin,
	}, nil
}

// BearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
