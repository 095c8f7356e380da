package storage

import "errors"

// Common storage errors
var (
	// ErrPrincipalNotFound indicates that principal was not found in storage
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrGroupNotFound indicates that group was not found
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupAlreadyExists indicates that group with this code already exists
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrMemberNotFound indicates that principal is not a member of the group
	ErrMemberNotFound = errors.New("membership not found")

	// ErrAgendaNotFound indicates that agenda document was not found
	ErrAgendaNotFound = errors.New("agenda not found")

	// ErrAgendaExists indicates that agenda was created concurrently
	ErrAgendaExists = errors.New("agenda already exists")

	// ErrVersionCheck indicates that stored version rule rejected the write
	// (version must start at 1 and grow by exactly one)
	ErrVersionCheck = errors.New("agenda version check failed")

	// ErrTxConflict indicates that transaction could not be committed
	// after all retries because of concurrent writers
	ErrTxConflict = errors.New("transaction conflict")
)
