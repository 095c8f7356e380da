package storage

import "context"

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveCursor saves the change cursor of the last successful pull for a group
	SaveCursor(ctx context.Context, groupID string, cursor int64) error

	// GetCursor retrieves the change cursor for a group
	// Returns 0 if no pull has been performed yet
	GetCursor(ctx context.Context, groupID string) (int64, error)
}
