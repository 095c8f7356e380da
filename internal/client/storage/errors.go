package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no identity has been stored yet
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrSessionNotFound indicates that the device has not joined a group
	ErrSessionNotFound = errors.New("session not found")

	// ErrAgendaNotFound indicates that the local mirror has no such document
	ErrAgendaNotFound = errors.New("agenda not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
