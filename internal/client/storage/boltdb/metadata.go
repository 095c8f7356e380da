package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const keyCursorPrefix = "cursor:"

func cursorKey(groupID string) []byte {
	return []byte(keyCursorPrefix + groupID)
}

// SaveCursor saves the change cursor of the last successful pull for a group
func (s *Storage) SaveCursor(ctx context.Context, groupID string, cursor int64) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	return db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		cursorBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(cursorBytes, uint64(cursor))

		if err := bucket.Put(cursorKey(groupID), cursorBytes); err != nil {
			return fmt.Errorf("failed to save cursor: %w", err)
		}
		return nil
	})
}

// GetCursor retrieves the change cursor for a group
// Returns 0 if no pull has been performed yet
func (s *Storage) GetCursor(ctx context.Context, groupID string) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var cursor int64

	err = db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		cursorBytes := bucket.Get(cursorKey(groupID))
		if cursorBytes == nil {
			// первая синхронизация
			return nil
		}

		cursor = int64(binary.BigEndian.Uint64(cursorBytes))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	return cursor, nil
}
