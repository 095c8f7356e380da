package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/iudanet/agendasync/internal/server/storage"
)

var _ storage.Storage = (*Store)(nil)

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store represents SQL storage implementation
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New creates Store over already opened and migrated database
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect.withDefaults()}
}

// Migrate применяет embedded миграции через goose provider
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, migrations fs.FS) error {
	provider, err := goose.NewProvider(dialect, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks database availability
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB returns the underlying database connection for testing purposes
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns dialect the store was created with
func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) q(query string) string {
	return s.dialect.Rebind(query)
}

// время хранится как unix миллисекунды, одинаково для обеих СУБД
func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
