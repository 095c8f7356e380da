package boltdb

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/models"
)

// Get retrieves a local agenda by ID
func (s *Storage) Get(ctx context.Context, id string) (*models.LocalAgenda, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var doc *models.LocalAgenda

	err = db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAgendas).Get([]byte(id))
		if data == nil {
			return storage.ErrAgendaNotFound
		}

		doc = &models.LocalAgenda{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal agenda: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Upsert stores the whole document and notifies StreamAll subscribers
func (s *Storage) Upsert(ctx context.Context, doc *models.LocalAgenda) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("agenda is nil")
	}

	db, err := s.handle()
	if err != nil {
		return "", err
	}

	stored := *doc
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := s.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal agenda: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketAgendas).Put([]byte(stored.ID), data); err != nil {
			return fmt.Errorf("failed to save agenda: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("transaction failed: %w", err)
	}

	s.publish()

	return stored.ID, nil
}

// List returns all documents ordered by date, then id
func (s *Storage) List(ctx context.Context) ([]*models.LocalAgenda, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	docs, err := listAgendas(db)
	if err != nil {
		return nil, fmt.Errorf("failed to list agendas: %w", err)
	}
	return docs, nil
}

// StreamAll подписывает на снимки списка повесток.
// Буфер канала один снимок: новый снимок вытесняет непрочитанный
func (s *Storage) StreamAll(ctx context.Context) (<-chan []models.AgendaSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	snapshot, err := summaries(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	id := uuid.NewString()
	ch := make(chan []models.AgendaSummary, 1)
	ch <- snapshot
	s.subscribers[id] = ch

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			close(sub)
			delete(s.subscribers, id)
		}
	}()

	return ch, nil
}

// publish отправляет свежий снимок всем подписчикам.
// Снимок читается под s.mu, поэтому подписчики не увидят снимки в обратном порядке
func (s *Storage) publish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil || len(s.subscribers) == 0 {
		return
	}

	snapshot, err := summaries(s.db)
	if err != nil {
		return
	}

	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func listAgendas(db *bbolt.DB) ([]*models.LocalAgenda, error) {
	var docs []*models.LocalAgenda

	err := db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAgendas).ForEach(func(k, v []byte) error {
			var doc models.LocalAgenda
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal agenda %s: %w", k, err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(docs, func(a, b *models.LocalAgenda) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.ID, b.ID))
	})
	return docs, nil
}

func summaries(db *bbolt.DB) ([]models.AgendaSummary, error) {
	docs, err := listAgendas(db)
	if err != nil {
		return nil, err
	}

	out := make([]models.AgendaSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Summary())
	}
	return out, nil
}
