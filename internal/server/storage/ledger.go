package storage

import (
	"context"
	"time"

	"github.com/iudanet/agendasync/internal/models"
)

// LedgerTx is a set of operations available inside one atomic transaction
type LedgerTx interface {
	// GetMembership reads membership inside transaction
	// Returns ErrMemberNotFound if principal is not a member
	GetMembership(ctx context.Context, groupID, principalID string) (*models.Membership, error)

	// TouchMembership updates LastActiveAt
	TouchMembership(ctx context.Context, groupID, principalID string, at time.Time) error

	// GetAgenda reads current document
	// Returns ErrAgendaNotFound if document doesn't exist
	GetAgenda(ctx context.Context, groupID, agendaID string) (*models.Agenda, error)

	// InsertAgenda creates document, Version must be 1
	// Returns ErrAgendaExists if document was created concurrently
	InsertAgenda(ctx context.Context, a *models.Agenda) error

	// UpdateAgenda replaces document if its stored version equals prevVersion
	// Returns ErrVersionCheck if stored version differs
	UpdateAgenda(ctx context.Context, a *models.Agenda, prevVersion int64) error

	// NextSeq returns next change cursor value for the group
	NextSeq(ctx context.Context, groupID string) (int64, error)
}

// LedgerStorage defines interface for versioned agenda documents
type LedgerStorage interface {
	// RunInTx executes fn in a single atomic transaction.
	// Returning error from fn rolls back all changes
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// GetAgenda retrieves document by ID
	// Returns ErrAgendaNotFound if document doesn't exist
	GetAgenda(ctx context.Context, groupID, agendaID string) (*models.Agenda, error)

	// ListAgendas returns all group documents ordered by seq
	ListAgendas(ctx context.Context, groupID string) ([]*models.Agenda, error)

	// ListAgendasSince returns documents changed after cursor ordered by seq
	ListAgendasSince(ctx context.Context, groupID string, since int64) ([]*models.Agenda, error)
}

// Storage aggregates everything the server needs from persistence
type Storage interface {
	PrincipalStorage
	TokenStorage
	GroupStorage
	LedgerStorage

	Ping(ctx context.Context) error
	Close() error
}
