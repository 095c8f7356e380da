package models

// SyncState состояние клиента синхронизации
type SyncState int

const (
	// SyncDisabled - нет идентичности, сетевые вызовы запрещены
	SyncDisabled SyncState = iota
	SyncConnected
	SyncError
	// SyncConflict - сервер отклонил запись из-за несовпадения версии
	SyncConflict
)

func (s SyncState) String() string {
	switch s {
	case SyncDisabled:
		return "disabled"
	case SyncConnected:
		return "connected"
	case SyncError:
		return "error"
	case SyncConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// SyncStatus наблюдаемый статус синхронизации
type SyncStatus struct {
	Message  string    // текст ошибки для Error и Conflict
	AgendaID string    // документ, вызвавший Conflict
	State    SyncState
}

func Disabled() SyncStatus  { return SyncStatus{State: SyncDisabled} }
func Connected() SyncStatus { return SyncStatus{State: SyncConnected} }

func ErrorStatus(msg string) SyncStatus {
	return SyncStatus{State: SyncError, Message: msg}
}

func ConflictStatus(msg, agendaID string) SyncStatus {
	return SyncStatus{State: SyncConflict, Message: msg, AgendaID: agendaID}
}

// String для вывода в CLI
func (s SyncStatus) String() string {
	switch s.State {
	case SyncError:
		return "error: " + s.Message
	case SyncConflict:
		if s.AgendaID != "" {
			return "conflict on " + s.AgendaID + ": " + s.Message
		}
		return "conflict: " + s.Message
	default:
		return s.State.String()
	}
}
