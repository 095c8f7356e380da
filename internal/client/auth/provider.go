// Package auth хранит и восстанавливает анонимную идентичность устройства.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/pkg/api"
)

// expirySkew - запас, чтобы не отправлять токен, который истечет в пути
const expirySkew = 30 * time.Second

// Remote - часть API сервера, нужная для входа
type Remote interface {
	SignInAnonymous(ctx context.Context, req api.AnonymousSignInRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
}

// Provider выдает идентичность: сохраненную, обновленную по refresh token или новую
type Provider struct {
	remote   Remote
	store    storage.AuthStorage
	logger   *slog.Logger
	now      func() time.Time
	adminKey string
	mu       sync.Mutex
}

// NewProvider создает провайдер. adminKey передается серверу при входе
// и дает platform admin claim, если совпадает с ключом сервера
func NewProvider(remote Remote, store storage.AuthStorage, adminKey string, logger *slog.Logger) *Provider {
	return &Provider{
		remote:   remote,
		store:    store,
		logger:   logger,
		now:      time.Now,
		adminKey: adminKey,
	}
}

// Identity возвращает пригодную к использованию идентичность.
// Сохраненный непросроченный токен используется повторно, просроченный обновляется,
// при отсутствии идентичности выполняется анонимный вход.
// Ошибки сервера и транспорта возвращаются с кодом Unauthenticated
func (p *Provider) Identity(ctx context.Context) (*models.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, err := p.store.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return p.signIn(ctx)
	case err != nil:
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}

	if !stored.Expired(p.now().Add(expirySkew)) {
		return toIdentity(stored), nil
	}

	resp, err := p.remote.Refresh(ctx, stored.RefreshToken)
	if err == nil {
		return p.save(ctx, resp)
	}
	if apperr.CodeOf(err) != apperr.CodeUnauthenticated {
		return nil, unauthenticated("refresh failed", err)
	}

	// refresh token отозван или истек: новая анонимная идентичность
	p.logger.WarnContext(ctx, "refresh rejected, signing in again",
		slog.String("principal_id", stored.PrincipalID))
	return p.signIn(ctx)
}

// SignIn всегда создает новую анонимную идентичность и заменяет сохраненную
func (p *Provider) SignIn(ctx context.Context) (*models.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.signIn(ctx)
}

// Current возвращает сохраненную идентичность без сетевых вызовов.
// storage.ErrAuthNotFound, если вход не выполнялся
func (p *Provider) Current(ctx context.Context) (*models.Identity, error) {
	stored, err := p.store.GetAuth(ctx)
	if err != nil {
		return nil, err
	}
	return toIdentity(stored), nil
}

// SignOut удаляет сохраненную идентичность
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	return nil
}

func (p *Provider) signIn(ctx context.Context) (*models.Identity, error) {
	resp, err := p.remote.SignInAnonymous(ctx, api.AnonymousSignInRequest{AdminKey: p.adminKey})
	if err != nil {
		return nil, unauthenticated("sign in failed", err)
	}

	identity, err := p.save(ctx, resp)
	if err != nil {
		return nil, err
	}

	p.logger.InfoContext(ctx, "signed in anonymously",
		slog.String("principal_id", identity.PrincipalID),
		slog.Bool("admin", identity.Admin))
	return identity, nil
}

func (p *Provider) save(ctx context.Context, resp *api.TokenResponse) (*models.Identity, error) {
	data := &storage.AuthData{
		PrincipalID:  resp.PrincipalID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    p.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
		Admin:        resp.Admin,
	}
	if err := p.store.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save identity: %w", err)
	}
	return toIdentity(data), nil
}

// unauthenticated сводит любую ошибку входа к Unauthenticated, сохраняя причину.
// Отмена вызывающим возвращается как есть
func unauthenticated(msg string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return apperr.Wrap(apperr.CodeUnauthenticated, msg+": "+apperr.MessageOf(err), err)
}

func toIdentity(a *storage.AuthData) *models.Identity {
	return &models.Identity{
		PrincipalID:  a.PrincipalID,
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		ExpiresAt:    time.Unix(a.ExpiresAt, 0),
		Admin:        a.Admin,
	}
}
