package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/agendasync/internal/client/storage"
	"github.com/iudanet/agendasync/internal/models"
)

var (
	// BoltDB bucket names
	bucketAuth     = []byte("auth")
	bucketSession  = []byte("session")
	bucketAgendas  = []byte("agendas")
	bucketMetadata = []byte("metadata")
)

// Compile-time checks
var (
	_ storage.AuthStorage     = (*Storage)(nil)
	_ storage.SessionStorage  = (*Storage)(nil)
	_ storage.MetadataStorage = (*Storage)(nil)
	_ storage.AgendaStore     = (*Storage)(nil)
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db  *bbolt.DB
	now func() time.Time

	mu          sync.Mutex
	subscribers map[string]chan []models.AgendaSummary
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Timeout не дает второму процессу CLI висеть на file lock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{
		db:          db,
		now:         time.Now,
		subscribers: make(map[string]chan []models.AgendaSummary),
	}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection and all StreamAll channels
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	for id, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, id)
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketSession, bucketAgendas, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// handle возвращает открытую БД или ErrStorageClosed
func (s *Storage) handle() (*bbolt.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	return s.db, nil
}
