// Package sync реализует клиентскую машину состояний синхронизации повесток:
// вход, вступление в группу, CAS отправку, загрузку и разрешение конфликтов.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/validation"
	"github.com/iudanet/agendasync/pkg/api"
)

//go:generate moq -out api_client_mock_test.go . APIClient
//go:generate moq -out identity_provider_mock_test.go . IdentityProvider

// APIClient - RPC сервера, которые использует синхронизация
type APIClient interface {
	JoinGroup(ctx context.Context, token string, req api.JoinGroupRequest) (*api.JoinGroupResponse, error)
	GetMembership(ctx context.Context, token, groupID, principalID string) (*api.Membership, error)
	UpdateAgenda(ctx context.Context, token, groupID, agendaID string, req api.UpdateAgendaRequest) (int64, error)
	UpdateAgendaForce(ctx context.Context, token, groupID, agendaID string, payload api.AgendaPayload) (int64, error)
	FetchAgenda(ctx context.Context, token, groupID, agendaID string) (*api.Agenda, error)
	FetchAgendas(ctx context.Context, token, groupID string, since int64) (*api.AgendaListResponse, error)
}

// IdentityProvider выдает анонимную идентичность устройства
type IdentityProvider interface {
	// Identity может обратиться к сети (refresh или вход)
	Identity(ctx context.Context) (*models.Identity, error)
	// Current читает только локальное хранилище
	Current(ctx context.Context) (*models.Identity, error)
	SignOut(ctx context.Context) error
}

// Ошибки предусловий. Возвращаются без сетевых вызовов и без смены статуса
var (
	ErrDisabled      = errors.New("sync is disabled: sign in first")
	ErrNotJoined     = errors.New("not a member of any group: join a group first")
	ErrNotInConflict = errors.New("no conflict to resolve")
	// ErrOtherAgenda - разрешение запрошено не для того документа, что в конфликте
	ErrOtherAgenda = errors.New("agenda is not the one in conflict")
	// ErrConflictPending - обычная загрузка не заменяет документ с неразрешенным конфликтом
	ErrConflictPending = errors.New("agenda has an unresolved conflict: reload or overwrite it")
)

// Service - машина состояний синхронизации.
// Состояния: Disabled -> Connected <-> {Error, Conflict}
type Service struct {
	api      APIClient
	identity IdentityProvider
	agendas  storage.AgendaStore
	metadata storage.MetadataStorage
	feed     *StatusFeed
	logger   *slog.Logger
	now      func() time.Time
	pulls    singleflight.Group
}

// NewService создает сервис в состоянии Disabled
func NewService(apiClient APIClient, identity IdentityProvider, agendas storage.AgendaStore, metadata storage.MetadataStorage, logger *slog.Logger) *Service {
	return &Service{
		api:      apiClient,
		identity: identity,
		agendas:  agendas,
		metadata: metadata,
		feed:     NewStatusFeed(),
		logger:   logger,
		now:      time.Now,
	}
}

// Status возвращает текущий статус
func (s *Service) Status() models.SyncStatus {
	return s.feed.Current()
}

// Subscribe подписывает на изменения статуса, текущий статус приходит сразу
func (s *Service) Subscribe(ctx context.Context) <-chan models.SyncStatus {
	return s.feed.Subscribe(ctx)
}

// Restore переводит сервис в Connected, если на устройстве сохранена идентичность.
// Сеть не используется
func (s *Service) Restore(ctx context.Context) bool {
	if _, err := s.identity.Current(ctx); err != nil {
		return false
	}
	s.settle("")
	return true
}

// SignInAnonymously получает идентичность: сохраненную, обновленную или новую
func (s *Service) SignInAnonymously(ctx context.Context) (*models.Identity, error) {
	id, err := s.identity.Identity(ctx)
	if err != nil {
		s.fail(ctx, "sign in", "", err)
		return nil, err
	}

	s.settle("")
	return id, nil
}

// SignOut удаляет идентичность и возвращает сервис в Disabled
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.identity.SignOut(ctx); err != nil {
		return err
	}
	s.feed.Publish(models.Disabled())
	return nil
}

// JoinGroup вступает в группу и загружает все ее документы.
// Прежние Error и Conflict сбрасываются до обращения к серверу.
// Если вступление удалось, а загрузка нет, возвращаются и сессия, и ошибка
func (s *Service) JoinGroup(ctx context.Context, groupCode, secret string) (*Session, error) {
	if s.Status().State == models.SyncDisabled {
		return nil, ErrDisabled
	}
	s.feed.Publish(models.Connected())

	id, err := s.identity.Identity(ctx)
	if err != nil {
		s.fail(ctx, "join group", "", err)
		return nil, err
	}

	resp, err := s.api.JoinGroup(ctx, id.AccessToken, api.JoinGroupRequest{
		GroupCode: strings.TrimSpace(groupCode),
		Secret:    secret,
	})
	if err != nil {
		s.fail(ctx, "join group", "", err)
		return nil, err
	}

	session := &Session{GroupID: resp.GroupID, Role: models.Role(resp.Role)}
	s.feed.Publish(models.Connected())
	s.logger.InfoContext(ctx, "joined group",
		slog.String("group_id", session.GroupID),
		slog.String("role", string(session.Role)))

	if _, err := s.PullAll(ctx, session); err != nil {
		return session, fmt.Errorf("joined %s but initial pull failed: %w", session.GroupID, err)
	}
	return session, nil
}

// RefreshMembership перечитывает роль участника с сервера
func (s *Service) RefreshMembership(ctx context.Context, session *Session) (*Session, error) {
	id, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	m, err := s.api.GetMembership(ctx, id.AccessToken, session.GroupID, id.PrincipalID)
	if err != nil {
		s.fail(ctx, "get membership", "", err)
		return nil, err
	}

	s.settle("")
	return &Session{GroupID: m.GroupID, Role: models.Role(m.Role)}, nil
}

// SaveDraft создает или изменяет локальный документ. Работает без сети в любом состоянии.
// Пустой id создает новый документ
func (s *Service) SaveDraft(ctx context.Context, id, title, date string, content map[string]any) (string, error) {
	if err := validation.ValidateMeetingInput(title, date); err != nil {
		return "", apperr.InvalidArgument(err.Error())
	}

	doc := &models.LocalAgenda{ID: id, Status: models.StatusDraft}
	if id != "" {
		existing, err := s.agendas.Get(ctx, id)
		switch {
		case err == nil:
			doc = existing
		case !errors.Is(err, storage.ErrAgendaNotFound):
			return "", fmt.Errorf("failed to load agenda: %w", err)
		}
	}

	doc.Title = strings.TrimSpace(title)
	doc.Date = strings.TrimSpace(date)
	if content != nil {
		doc.Content = content
	}
	doc.UpdatedAt = s.now()

	saved, err := s.agendas.Upsert(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to save agenda: %w", err)
	}
	return saved, nil
}

// Push отправляет локальный документ с ожидаемой версией doc.SyncVersion.
// При конфликте локальный документ не меняется, статус становится Conflict
func (s *Service) Push(ctx context.Context, session *Session, agendaID string) (int64, error) {
	id, err := s.begin(ctx, session)
	if err != nil {
		return 0, err
	}

	doc, err := s.agendas.Get(ctx, agendaID)
	if err != nil {
		s.fail(ctx, "push", agendaID, err)
		return 0, err
	}

	expected := doc.SyncVersion
	version, err := s.api.UpdateAgenda(ctx, id.AccessToken, session.GroupID, doc.ID, api.UpdateAgendaRequest{
		ExpectedVersion: &expected,
		Payload:         toPayload(doc),
	})
	if err != nil {
		s.fail(ctx, "push", agendaID, err)
		return 0, err
	}

	if err := s.adoptVersion(ctx, doc, version); err != nil {
		s.fail(ctx, "push", agendaID, err)
		return 0, err
	}

	s.settle(doc.ID)
	s.logger.DebugContext(ctx, "agenda pushed",
		slog.String("agenda_id", doc.ID),
		slog.Int64("version", version))
	return version, nil
}

// Pull заменяет локальный документ серверной копией.
// Документ с неразрешенным конфликтом не трогается, конфликт остается
func (s *Service) Pull(ctx context.Context, session *Session, agendaID string) (*models.LocalAgenda, error) {
	if held := s.held(); held != "" && held == agendaID {
		return nil, ErrConflictPending
	}

	doc, err := s.pull(ctx, session, agendaID)
	if err != nil {
		return nil, err
	}

	s.settle("")
	return doc, nil
}

// PullAll загружает все документы группы и запоминает курсор изменений.
// Одновременные вызовы для одной группы выполняют один запрос
func (s *Service) PullAll(ctx context.Context, session *Session) (int, error) {
	return s.pullSince(ctx, session, false)
}

// PullChanges загружает только документы, измененные после сохраненного курсора
func (s *Service) PullChanges(ctx context.Context, session *Session) (int, error) {
	return s.pullSince(ctx, session, true)
}

// ReloadFromRemote разрешает конфликт в пользу серверной копии.
// Пустой agendaID означает документ из статуса Conflict
func (s *Service) ReloadFromRemote(ctx context.Context, session *Session, agendaID string) (*models.LocalAgenda, error) {
	target, err := s.conflictTarget(agendaID)
	if err != nil {
		return nil, err
	}

	doc, err := s.pull(ctx, session, target)
	if err != nil {
		return nil, err
	}

	s.settle(target)
	return doc, nil
}

// OverwriteRemote разрешает конфликт в пользу локальной копии.
// Доступно только admin группы; для остальных отказ без обращения к серверу
func (s *Service) OverwriteRemote(ctx context.Context, session *Session, agendaID string) (int64, error) {
	target, err := s.conflictTarget(agendaID)
	if err != nil {
		return 0, err
	}
	if !session.Admin() {
		return 0, apperr.PermissionDenied("only group admins can overwrite the remote copy")
	}

	id, err := s.begin(ctx, session)
	if err != nil {
		return 0, err
	}

	doc, err := s.agendas.Get(ctx, target)
	if err != nil {
		s.fail(ctx, "overwrite remote", target, err)
		return 0, err
	}

	version, err := s.api.UpdateAgendaForce(ctx, id.AccessToken, session.GroupID, doc.ID, toPayload(doc))
	if err != nil {
		s.fail(ctx, "overwrite remote", target, err)
		return 0, err
	}

	if err := s.adoptVersion(ctx, doc, version); err != nil {
		s.fail(ctx, "overwrite remote", target, err)
		return 0, err
	}

	s.settle(target)
	s.logger.InfoContext(ctx, "remote agenda overwritten",
		slog.String("agenda_id", doc.ID),
		slog.Int64("version", version))
	return version, nil
}

// conflictTarget проверяет, что сервис в Conflict, и возвращает документ конфликта
func (s *Service) conflictTarget(agendaID string) (string, error) {
	st := s.Status()
	switch st.State {
	case models.SyncDisabled:
		return "", ErrDisabled
	case models.SyncConflict:
	default:
		return "", ErrNotInConflict
	}

	switch {
	case agendaID == "" && st.AgendaID == "":
		return "", apperr.InvalidArgument("agenda id is required")
	case agendaID == "":
		return st.AgendaID, nil
	case st.AgendaID != "" && agendaID != st.AgendaID:
		return "", fmt.Errorf("%w: conflict is on %s", ErrOtherAgenda, st.AgendaID)
	}
	return agendaID, nil
}

// held возвращает документ, ожидающий разрешения конфликта
func (s *Service) held() string {
	if st := s.Status(); st.State == models.SyncConflict {
		return st.AgendaID
	}
	return ""
}

// settle возвращает Connected после успешной операции над agendaID.
// Конфликт другого документа сохраняется; пустой agendaID конфликт не снимает
func (s *Service) settle(agendaID string) {
	s.feed.PublishUnless(models.Connected(), func(cur models.SyncStatus) bool {
		return cur.State == models.SyncConflict && (agendaID == "" || cur.AgendaID != agendaID)
	})
}

// begin проверяет предусловия без сети и получает токен
func (s *Service) begin(ctx context.Context, session *Session) (*models.Identity, error) {
	if s.Status().State == models.SyncDisabled {
		return nil, ErrDisabled
	}
	if !session.Joined() {
		return nil, ErrNotJoined
	}

	id, err := s.identity.Identity(ctx)
	if err != nil {
		s.fail(ctx, "sign in", "", err)
		return nil, err
	}
	return id, nil
}

func (s *Service) pullSince(ctx context.Context, session *Session, incremental bool) (int, error) {
	id, err := s.begin(ctx, session)
	if err != nil {
		return 0, err
	}

	key := "all:" + session.GroupID
	if incremental {
		key = "changes:" + session.GroupID
	}

	fetch := func() (any, error) {
		return s.fetchAndApply(ctx, id, session.GroupID, incremental)
	}
	v, err, shared := s.pulls.Do(key, fetch)
	// общий запрос выполнялся под контекстом другого вызывающего и мог быть отменен им
	if err != nil && shared && ctx.Err() == nil && isCanceled(err) {
		v, err, shared = s.pulls.Do(key, fetch)
	}
	if err != nil {
		s.fail(ctx, "pull", "", err)
		return 0, err
	}

	s.settle("")
	n := v.(int)
	s.logger.DebugContext(ctx, "pulled agendas",
		slog.String("group_id", session.GroupID),
		slog.Int("count", n),
		slog.Bool("incremental", incremental),
		slog.Bool("shared", shared))
	return n, nil
}

func (s *Service) fetchAndApply(ctx context.Context, id *models.Identity, groupID string, incremental bool) (int, error) {
	var since int64
	if incremental {
		cursor, err := s.metadata.GetCursor(ctx, groupID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to read cursor, pulling everything", slog.Any("error", err))
		} else {
			since = cursor
		}
	}

	resp, err := s.api.FetchAgendas(ctx, id.AccessToken, groupID, since)
	if err != nil {
		return 0, err
	}

	applied := 0
	for i := range resp.Agendas {
		remote := &resp.Agendas[i]
		if held := s.held(); held != "" && remote.ID == held {
			s.logger.DebugContext(ctx, "skipping agenda in conflict", slog.String("agenda_id", remote.ID))
			continue
		}
		if _, err := s.applyRemote(ctx, remote); err != nil {
			return 0, err
		}
		applied++
	}

	if resp.Cursor > since {
		if err := s.metadata.SaveCursor(ctx, groupID, resp.Cursor); err != nil {
			// следующий PullChanges просто загрузит больше
			s.logger.WarnContext(ctx, "failed to save cursor", slog.Any("error", err))
		}
	}
	return applied, nil
}

func (s *Service) pull(ctx context.Context, session *Session, agendaID string) (*models.LocalAgenda, error) {
	id, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	remote, err := s.api.FetchAgenda(ctx, id.AccessToken, session.GroupID, agendaID)
	if err != nil {
		s.fail(ctx, "pull", agendaID, err)
		return nil, err
	}

	doc, err := s.applyRemote(ctx, remote)
	if err != nil {
		s.fail(ctx, "pull", agendaID, err)
		return nil, err
	}
	return doc, nil
}

// applyRemote заменяет локальные поля серверными. createdAt локальной копии сохраняется,
// syncVersion становится версией сервера
func (s *Service) applyRemote(ctx context.Context, remote *api.Agenda) (*models.LocalAgenda, error) {
	doc, err := s.agendas.Get(ctx, remote.ID)
	switch {
	case errors.Is(err, storage.ErrAgendaNotFound):
		doc = &models.LocalAgenda{ID: remote.ID}
	case err != nil:
		return nil, fmt.Errorf("failed to load agenda %s: %w", remote.ID, err)
	}

	doc.Title = remote.Title
	doc.Date = remote.Date
	doc.Status = remote.Status
	doc.Content = remote.Content
	doc.UpdatedAt = remote.UpdatedAt
	doc.SyncVersion = remote.Version

	if _, err := s.agendas.Upsert(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save agenda %s: %w", remote.ID, err)
	}
	return doc, nil
}

func (s *Service) adoptVersion(ctx context.Context, doc *models.LocalAgenda, version int64) error {
	doc.SyncVersion = version
	doc.Status = models.StatusDraft
	if _, err := s.agendas.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("failed to save agenda %s: %w", doc.ID, err)
	}
	return nil
}

// fail сводит ошибку к статусу. Отмена вызывающим статус не меняет
func (s *Service) fail(ctx context.Context, op, agendaID string, err error) {
	if errors.Is(err, context.Canceled) {
		s.logger.DebugContext(ctx, "sync operation canceled", slog.String("op", op))
		return
	}

	msg := apperr.MessageOf(err)
	if apperr.CodeOf(err) == apperr.CodeConflict {
		s.feed.Publish(models.ConflictStatus(msg, agendaID))
		s.logger.WarnContext(ctx, "sync conflict",
			slog.String("op", op),
			slog.String("agenda_id", agendaID),
			slog.String("message", msg))
		return
	}

	s.feed.Publish(models.ErrorStatus(msg))
	s.logger.WarnContext(ctx, "sync failed",
		slog.String("op", op),
		slog.String("agenda_id", agendaID),
		slog.Any("error", err))
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func toPayload(doc *models.LocalAgenda) api.AgendaPayload {
	content := doc.Content
	if content == nil {
		content = map[string]any{}
	}
	return api.AgendaPayload{
		Title:   doc.Title,
		Date:    doc.Date,
		Status:  models.StatusDraft,
		Content: content,
	}
}
