package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/storage"
)

const agendaColumns = `group_id, agenda_id, title, date, status, content, version, seq, updated_at, updated_by`

// GetAgenda retrieves document by ID
func (s *Store) GetAgenda(ctx context.Context, groupID, agendaID string) (*models.Agenda, error) {
	return getAgenda(ctx, s.db, s.dialect, groupID, agendaID)
}

// ListAgendas returns all group documents ordered by seq
func (s *Store) ListAgendas(ctx context.Context, groupID string) ([]*models.Agenda, error) {
	return s.ListAgendasSince(ctx, groupID, 0)
}

// ListAgendasSince returns documents changed after cursor ordered by seq
func (s *Store) ListAgendasSince(ctx context.Context, groupID string, since int64) ([]*models.Agenda, error) {
	query := s.q(`SELECT ` + agendaColumns + ` FROM agendas WHERE group_id = ? AND seq > ? ORDER BY seq ASC`)

	rows, err := s.db.QueryContext(ctx, query, groupID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query agendas: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	agendas := make([]*models.Agenda, 0)
	for rows.Next() {
		a, err := scanAgenda(rows)
		if err != nil {
			return nil, err
		}
		agendas = append(agendas, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agendas, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgenda(row rowScanner) (*models.Agenda, error) {
	a := &models.Agenda{}
	var content string
	var updatedAt int64

	if err := row.Scan(
		&a.GroupID,
		&a.ID,
		&a.Title,
		&a.Date,
		&a.Status,
		&content,
		&a.Version,
		&a.Seq,
		&updatedAt,
		&a.UpdatedBy,
	); err != nil {
		return nil, err
	}

	if content != "" {
		if err := json.Unmarshal([]byte(content), &a.Content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal agenda content: %w", err)
		}
	}
	a.UpdatedAt = fromMillis(updatedAt)

	return a, nil
}

func getAgenda(ctx context.Context, q querier, d Dialect, groupID, agendaID string) (*models.Agenda, error) {
	query := d.Rebind(`SELECT ` + agendaColumns + ` FROM agendas WHERE group_id = ? AND agenda_id = ?`)

	a, err := scanAgenda(q.QueryRowContext(ctx, query, groupID, agendaID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAgendaNotFound
		}
		return nil, fmt.Errorf("failed to get agenda: %w", err)
	}

	return a, nil
}

func marshalContent(content map[string]any) (string, error) {
	if content == nil {
		return "{}", nil
	}
	data, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to marshal agenda content: %w", err)
	}
	return string(data), nil
}

func insertAgenda(ctx context.Context, q querier, d Dialect, a *models.Agenda) error {
	content, err := marshalContent(a.Content)
	if err != nil {
		return err
	}

	query := d.Rebind(`INSERT INTO agendas (` + agendaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = q.ExecContext(ctx, query,
		a.GroupID,
		a.ID,
		a.Title,
		a.Date,
		a.Status,
		content,
		a.Version,
		a.Seq,
		toMillis(a.UpdatedAt),
		a.UpdatedBy,
	)
	if err != nil {
		switch {
		case d.IsVersionViolation(err):
			return storage.ErrVersionCheck
		case d.IsUniqueViolation(err):
			return storage.ErrAgendaExists
		}
		return fmt.Errorf("failed to insert agenda: %w", err)
	}

	return nil
}

func updateAgenda(ctx context.Context, q querier, d Dialect, a *models.Agenda, prevVersion int64) error {
	content, err := marshalContent(a.Content)
	if err != nil {
		return err
	}

	query := d.Rebind(`
		UPDATE agendas
		SET title = ?, date = ?, status = ?, content = ?, version = ?, seq = ?, updated_at = ?, updated_by = ?
		WHERE group_id = ? AND agenda_id = ? AND version = ?
	`)

	result, err := q.ExecContext(ctx, query,
		a.Title,
		a.Date,
		a.Status,
		content,
		a.Version,
		a.Seq,
		toMillis(a.UpdatedAt),
		a.UpdatedBy,
		a.GroupID,
		a.ID,
		prevVersion,
	)
	if err != nil {
		if d.IsVersionViolation(err) {
			return storage.ErrVersionCheck
		}
		return fmt.Errorf("failed to update agenda: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrVersionCheck
	}

	return nil
}

func nextSeq(ctx context.Context, q querier, d Dialect, groupID string) (int64, error) {
	query := d.Rebind(`SELECT COALESCE(MAX(seq), 0) + 1 FROM agendas WHERE group_id = ?`)

	var seq int64
	if err := q.QueryRowContext(ctx, query, groupID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to compute next seq: %w", err)
	}

	return seq, nil
}
