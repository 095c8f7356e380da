// Package postgres подключает sqlstore к PostgreSQL через pgx.
// Транзакции ledger выполняются с уровнем SERIALIZABLE и повторяются
// при конфликте сериализации.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/iudanet/agendasync/internal/server/storage/sqlstore"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLSTATE коды, которые мы различаем
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Dialect описывает PostgreSQL для sqlstore
var Dialect = sqlstore.Dialect{
	Name:               "postgres",
	Numbered:           true,
	IsUniqueViolation:  isUniqueViolation,
	IsVersionViolation: isVersionViolation,
	IsRetryable:        isRetryable,
	TxOptions:          &sql.TxOptions{Isolation: sql.LevelSerializable},
	MaxTxRetries:       5,
}

// New opens PostgreSQL database by URL and applies migrations
func New(ctx context.Context, databaseURL string) (*sqlstore.Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(20)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	if err := sqlstore.Migrate(ctx, db, goose.DialectPostgres, migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlstore.New(db, Dialect), nil
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.SQLState()
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return sqlState(err) == codeUniqueViolation
}

func isVersionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.SQLState() == codeCheckViolation && strings.Contains(pgErr.Message, "agenda version must")
}

func isRetryable(err error) bool {
	switch sqlState(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
