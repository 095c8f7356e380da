package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/storage"
)

// ledgerTx реализует storage.LedgerTx поверх *sql.Tx
type ledgerTx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *ledgerTx) GetMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error) {
	return getMembership(ctx, t.tx, t.dialect, groupID, principalID)
}

func (t *ledgerTx) TouchMembership(ctx context.Context, groupID, principalID string, at time.Time) error {
	return touchMembership(ctx, t.tx, t.dialect, groupID, principalID, at)
}

func (t *ledgerTx) GetAgenda(ctx context.Context, groupID, agendaID string) (*models.Agenda, error) {
	return getAgenda(ctx, t.tx, t.dialect, groupID, agendaID)
}

func (t *ledgerTx) InsertAgenda(ctx context.Context, a *models.Agenda) error {
	return insertAgenda(ctx, t.tx, t.dialect, a)
}

func (t *ledgerTx) UpdateAgenda(ctx context.Context, a *models.Agenda, prevVersion int64) error {
	return updateAgenda(ctx, t.tx, t.dialect, a, prevVersion)
}

func (t *ledgerTx) NextSeq(ctx context.Context, groupID string) (int64, error) {
	return nextSeq(ctx, t.tx, t.dialect, groupID)
}

// RunInTx executes fn in a single transaction with dialect isolation level.
// Retryable failures (serialization, concurrent insert) restart fn from scratch,
// so fn must not keep side effects outside of tx
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx storage.LedgerTx) error) error {
	var lastErr error

	for attempt := 0; attempt < s.dialect.MaxTxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !s.retryable(err) {
			return err
		}
		lastErr = err

		// небольшая пауза перед повтором, растет с номером попытки
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 5 * time.Millisecond):
		}
	}

	return fmt.Errorf("%w: %w", storage.ErrTxConflict, lastErr)
}

func (s *Store) retryable(err error) bool {
	return errors.Is(err, storage.ErrAgendaExists) || s.dialect.IsRetryable(err)
}

func (s *Store) runOnce(ctx context.Context, fn func(ctx context.Context, tx storage.LedgerTx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, s.dialect.TxOptions)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, &ledgerTx{tx: tx, dialect: s.dialect}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
