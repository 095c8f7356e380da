package models

import "time"

// StatusDraft статус, с которым клиент отправляет повестку
const StatusDraft = "draft"

// Agenda представляет авторитетную копию документа повестки на сервере.
// На пару (GroupID, ID) существует ровно один документ
type Agenda struct {
	UpdatedAt time.Time      `json:"updated_at"`
	Content   map[string]any `json:"content"`    // непрозрачное содержимое
	GroupID   string         `json:"group_id"`
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Date      string         `json:"date"`
	Status    string         `json:"status"`
	UpdatedBy string         `json:"updated_by"` // principal последней записи
	Version   int64          `json:"version"`    // >= 1, только растет
	Seq       int64          `json:"seq"`        // курсор изменений внутри группы
}

// LocalAgenda представляет локальную копию документа на устройстве.
// SyncVersion - последняя подтвержденная сервером версия, 0 если документ не синхронизирован
type LocalAgenda struct {
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Content     map[string]any `json:"content"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Date        string         `json:"date"`
	Status      string         `json:"status"`
	SyncVersion int64          `json:"sync_version"`
}

// AgendaSummary краткое представление для списков
type AgendaSummary struct {
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	SyncVersion int64     `json:"sync_version"`
}

// Summary возвращает краткое представление документа
func (a *LocalAgenda) Summary() AgendaSummary {
	return AgendaSummary{
		ID:          a.ID,
		Title:       a.Title,
		Date:        a.Date,
		UpdatedAt:   a.UpdatedAt,
		SyncVersion: a.SyncVersion,
	}
}
