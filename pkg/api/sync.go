package api

import "time"

// AgendaPayload содержит поля документа повестки, которые пишет клиент
// Content непрозрачен для сервера
type AgendaPayload struct {
	Content map[string]any `json:"content"`
	Title   string         `json:"title"`
	Date    string         `json:"date"`
	Status  string         `json:"status"`
}

// UpdateAgendaRequest представляет CAS-запрос на запись документа
// ExpectedVersion == nil означает запись без проверки версии существующего документа
type UpdateAgendaRequest struct {
	ExpectedVersion *int64        `json:"expected_version"`
	Payload         AgendaPayload `json:"payload"`
}

// UpdateAgendaForceRequest представляет принудительную запись (только admin группы)
type UpdateAgendaForceRequest struct {
	Payload AgendaPayload `json:"payload"`
}

// UpdateAgendaResponse возвращает новую версию документа
type UpdateAgendaResponse struct {
	Version int64 `json:"version"`
}

// Agenda представляет документ повестки в том виде, как его хранит сервер
type Agenda struct {
	UpdatedAt time.Time      `json:"updated_at"`
	Content   map[string]any `json:"content"`
	ID        string         `json:"id"`
	GroupID   string         `json:"group_id"`
	Title     string         `json:"title"`
	Date      string         `json:"date"`
	Status    string         `json:"status"`
	UpdatedBy string         `json:"updated_by"`
	Version   int64          `json:"version"`
	Seq       int64          `json:"seq"`
}

// AgendaListResponse представляет ответ на получение списка документов
// Cursor - максимальный seq в ответе, передается в следующий запрос как since
type AgendaListResponse struct {
	Agendas []Agenda `json:"agendas"`
	Cursor  int64    `json:"cursor"`
}
