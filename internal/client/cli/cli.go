package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/agendasync/internal/client/iocli"
	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/client/sync"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/pkg/api"
)

// SecretEnv - переменная окружения с секретом группы
const SecretEnv = "AGENDASYNC_GROUP_SECRET"

//go:generate moq -out syncservice_mock_test.go . SyncService

// SyncService - операции машины синхронизации, которые вызывают команды
type SyncService interface {
	Status() models.SyncStatus
	Subscribe(ctx context.Context) <-chan models.SyncStatus
	Restore(ctx context.Context) bool
	SignInAnonymously(ctx context.Context) (*models.Identity, error)
	SignOut(ctx context.Context) error
	JoinGroup(ctx context.Context, groupCode, secret string) (*sync.Session, error)
	RefreshMembership(ctx context.Context, session *sync.Session) (*sync.Session, error)
	SaveDraft(ctx context.Context, id, title, date string, content map[string]any) (string, error)
	Push(ctx context.Context, session *sync.Session, agendaID string) (int64, error)
	Pull(ctx context.Context, session *sync.Session, agendaID string) (*models.LocalAgenda, error)
	PullAll(ctx context.Context, session *sync.Session) (int, error)
	PullChanges(ctx context.Context, session *sync.Session) (int, error)
	ReloadFromRemote(ctx context.Context, session *sync.Session, agendaID string) (*models.LocalAgenda, error)
	OverwriteRemote(ctx context.Context, session *sync.Session, agendaID string) (int64, error)
}

// GroupAdmin - RPC управления группами
type GroupAdmin interface {
	CreateGroup(ctx context.Context, token string, req api.CreateGroupRequest) (*api.CreateGroupResponse, error)
	SetMemberRole(ctx context.Context, token, groupID, principalID, role string) error
}

// IdentityProvider выдает токен устройства
type IdentityProvider interface {
	Identity(ctx context.Context) (*models.Identity, error)
	Current(ctx context.Context) (*models.Identity, error)
}

// AutoSyncer - фоновая загрузка для команды watch
type AutoSyncer interface {
	Run(ctx context.Context)
	SetInterval(d time.Duration)
	SetSession(session *sync.Session)
	Interval() time.Duration
}

// Secrets - источники секрета группы
type Secrets struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io          iocli.IO
	syncService SyncService
	agendas     storage.AgendaStore
	sessions    storage.SessionStorage
	identity    IdentityProvider
	groups      GroupAdmin
	autosync    AutoSyncer
	logger      *slog.Logger
}

// Deps - зависимости команд
type Deps struct {
	IO          iocli.IO
	SyncService SyncService
	Agendas     storage.AgendaStore
	Sessions    storage.SessionStorage
	Identity    IdentityProvider
	Groups      GroupAdmin
	AutoSync    AutoSyncer
	Logger      *slog.Logger
}

func New(d Deps) *Cli {
	return &Cli{
		io:          d.IO,
		syncService: d.SyncService,
		agendas:     d.Agendas,
		sessions:    d.Sessions,
		identity:    d.Identity,
		groups:      d.Groups,
		autosync:    d.AutoSync,
		logger:      d.Logger,
	}
}

// connect восстанавливает вход устройства и сохраненную сессию группы
func (c *Cli) connect(ctx context.Context) (*sync.Session, error) {
	if !c.syncService.Restore(ctx) {
		return nil, fmt.Errorf("not signed in. Please run 'agendasync signin' first")
	}

	data, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not a member of any group. Please run 'agendasync join <code>' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &sync.Session{GroupID: data.GroupID, Role: models.Role(data.Role)}, nil
}

func (c *Cli) saveSession(ctx context.Context, session *sync.Session) error {
	if err := c.sessions.SaveSession(ctx, &storage.SessionData{
		GroupID: session.GroupID,
		Role:    string(session.Role),
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// getGroupSecret retrieves the group secret from various sources with priority:
// 1. Environment variable AGENDASYNC_GROUP_SECRET
// 2. File specified in secrets.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getGroupSecret(secrets Secrets) (string, error) {
	if envSecret := os.Getenv(SecretEnv); envSecret != "" {
		return envSecret, nil
	}

	if secrets.FromFile != "" {
		content, err := os.ReadFile(secrets.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		secret := strings.TrimSpace(string(content))
		if secret == "" {
			return "", fmt.Errorf("secret file is empty")
		}
		return secret, nil
	}

	if secrets.FromArgs != "" {
		return secrets.FromArgs, nil
	}

	secret, err := c.io.ReadPassword("Group secret: ")
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}
	return secret, nil
}
