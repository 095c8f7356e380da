// Package ledger хранит версионированные документы повестки и принимает записи
// по принципу compare-and-swap.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/rbac"
	"github.com/iudanet/agendasync/internal/server/rules"
	"github.com/iudanet/agendasync/internal/server/storage"
	"github.com/iudanet/agendasync/internal/validation"
)

// Store - то, что ledger использует из хранилища
type Store interface {
	storage.LedgerStorage
	GetMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error)
}

// Payload поля документа, которые присылает клиент
type Payload struct {
	Content map[string]any
	Title   string
	Date    string
	Status  string
}

// Service version ledger
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает ledger поверх хранилища
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// UpdateAgenda записывает документ, если expectedVersion совпадает с текущей версией.
// Отсутствующий документ создается с версией 1, если expectedVersion не задан или равен 0.
// expectedVersion == nil для существующего документа означает запись поверх любой версии
func (s *Service) UpdateAgenda(ctx context.Context, auth *rules.Auth, groupID, agendaID string, p Payload, expectedVersion *int64) (int64, error) {
	return s.write(ctx, auth, groupID, agendaID, p, expectedVersion, false)
}

// UpdateAgendaForce записывает документ без проверки версии. Требует роль admin в группе
func (s *Service) UpdateAgendaForce(ctx context.Context, auth *rules.Auth, groupID, agendaID string, p Payload) (int64, error) {
	return s.write(ctx, auth, groupID, agendaID, p, nil, true)
}

func (s *Service) write(ctx context.Context, auth *rules.Auth, groupID, agendaID string, p Payload, expected *int64, force bool) (int64, error) {
	if auth == nil || auth.PrincipalID == "" {
		return 0, apperr.Unauthenticated("sign in required")
	}

	groupID = validation.NormalizeGroupCode(groupID)
	agendaID = strings.TrimSpace(agendaID)

	var version int64
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx storage.LedgerTx) error {
		m, err := tx.GetMembership(ctx, groupID, auth.PrincipalID)
		if err != nil {
			if errors.Is(err, storage.ErrMemberNotFound) {
				return apperr.PermissionDenied("not a member of this group")
			}
			return err
		}
		if !rbac.Can(m.Role, rbac.ActionWrite) {
			return apperr.PermissionDenied("role cannot write agendas")
		}
		if force && !rbac.Can(m.Role, rbac.ActionForceWrite) {
			return apperr.PermissionDenied("admin role required to overwrite")
		}

		if err := validation.ValidateAgendaID(agendaID); err != nil {
			return apperr.InvalidArgument(err.Error())
		}
		if err := validation.ValidatePayload(p.Title, p.Date); err != nil {
			return apperr.InvalidArgument(err.Error())
		}
		if expected != nil && *expected < 0 {
			return apperr.InvalidArgument("expected version must not be negative")
		}

		cur, err := tx.GetAgenda(ctx, groupID, agendaID)
		if err != nil {
			if !errors.Is(err, storage.ErrAgendaNotFound) {
				return err
			}
			cur = nil
		}

		if !force && expected != nil {
			if cur == nil && *expected > 0 {
				return apperr.Conflict("version mismatch")
			}
			if cur != nil && *expected != cur.Version {
				return apperr.Conflict("version mismatch")
			}
		}

		next := int64(1)
		if cur != nil {
			next = cur.Version + 1
		}
		if err := rules.CheckAgendaWrite(auth, m, cur, next); err != nil {
			return err
		}

		seq, err := tx.NextSeq(ctx, groupID)
		if err != nil {
			return err
		}

		now := s.now()
		doc := mergePayload(cur, p)
		doc.GroupID = groupID
		doc.ID = agendaID
		doc.Version = next
		doc.Seq = seq
		doc.UpdatedAt = now
		doc.UpdatedBy = auth.PrincipalID

		if cur == nil {
			err = tx.InsertAgenda(ctx, doc)
		} else {
			err = tx.UpdateAgenda(ctx, doc, cur.Version)
		}
		if err != nil {
			if errors.Is(err, storage.ErrVersionCheck) {
				return apperr.Conflict("version mismatch")
			}
			return err
		}

		if err := tx.TouchMembership(ctx, groupID, auth.PrincipalID, now); err != nil {
			return err
		}

		version = next
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to update agenda: %w", err)
	}

	s.logger.InfoContext(ctx, "agenda updated",
		slog.String("group_id", groupID),
		slog.String("agenda_id", agendaID),
		slog.Int64("version", version),
		slog.Bool("force", force),
		slog.String("principal_id", auth.PrincipalID))

	return version, nil
}

// mergePayload накладывает поля клиента на текущий документ.
// Пустой status и nil content сохраняют текущие значения
func mergePayload(cur *models.Agenda, p Payload) *models.Agenda {
	doc := &models.Agenda{Status: models.StatusDraft}
	if cur != nil {
		*doc = *cur
	}

	doc.Title = strings.TrimSpace(p.Title)
	doc.Date = strings.TrimSpace(p.Date)
	if p.Status != "" {
		doc.Status = p.Status
	}
	if p.Content != nil {
		doc.Content = p.Content
	}
	if doc.Content == nil {
		doc.Content = map[string]any{}
	}
	return doc
}

// FetchAgenda возвращает документ с версией. Только для участников группы
func (s *Service) FetchAgenda(ctx context.Context, auth *rules.Auth, groupID, agendaID string) (*models.Agenda, error) {
	groupID = validation.NormalizeGroupCode(groupID)
	if err := s.checkRead(ctx, auth, groupID); err != nil {
		return nil, err
	}

	a, err := s.store.GetAgenda(ctx, groupID, agendaID)
	if err != nil {
		if errors.Is(err, storage.ErrAgendaNotFound) {
			return nil, apperr.NotFound("agenda not found")
		}
		return nil, fmt.Errorf("failed to fetch agenda: %w", err)
	}

	return a, nil
}

// FetchAgendas возвращает все документы группы и курсор для инкрементальных запросов
func (s *Service) FetchAgendas(ctx context.Context, auth *rules.Auth, groupID string) ([]*models.Agenda, int64, error) {
	return s.FetchAgendasSince(ctx, auth, groupID, 0)
}

// FetchAgendasSince возвращает документы, измененные после курсора since
func (s *Service) FetchAgendasSince(ctx context.Context, auth *rules.Auth, groupID string, since int64) ([]*models.Agenda, int64, error) {
	if since < 0 {
		return nil, 0, apperr.InvalidArgument("since must not be negative")
	}

	groupID = validation.NormalizeGroupCode(groupID)
	if err := s.checkRead(ctx, auth, groupID); err != nil {
		return nil, 0, err
	}

	agendas, err := s.store.ListAgendasSince(ctx, groupID, since)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agendas: %w", err)
	}

	cursor := since
	for _, a := range agendas {
		if a.Seq > cursor {
			cursor = a.Seq
		}
	}

	return agendas, cursor, nil
}

func (s *Service) checkRead(ctx context.Context, auth *rules.Auth, groupID string) error {
	if auth == nil || auth.PrincipalID == "" {
		return apperr.Unauthenticated("sign in required")
	}

	m, err := s.store.GetMembership(ctx, groupID, auth.PrincipalID)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			m = nil
		} else {
			return fmt.Errorf("failed to get membership: %w", err)
		}
	}

	return rules.CanReadGroup(auth, m)
}
