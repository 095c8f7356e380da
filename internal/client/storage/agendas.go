package storage

import (
	"context"

	"github.com/iudanet/agendasync/internal/models"
)

//go:generate moq -out agendastore_mock.go . AgendaStore

// AgendaStore локальное зеркало документов повесток
type AgendaStore interface {
	// Get returns ErrAgendaNotFound if the document is absent
	Get(ctx context.Context, id string) (*models.LocalAgenda, error)

	// Upsert сохраняет документ целиком и возвращает его id.
	// Пустой id означает новый документ, id генерируется хранилищем
	Upsert(ctx context.Context, doc *models.LocalAgenda) (string, error)

	// List returns all documents ordered by date, then id
	List(ctx context.Context) ([]*models.LocalAgenda, error)

	// StreamAll присылает текущий снимок сразу после подписки и новый снимок
	// после каждого изменения. Медленный читатель получает только последний снимок.
	// Канал закрывается при отмене ctx
	StreamAll(ctx context.Context) (<-chan []models.AgendaSummary, error)
}
