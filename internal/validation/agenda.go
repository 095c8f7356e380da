package validation

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout формат даты встречи
const DateLayout = "2006-01-02"

// MaxTitleLen максимальная длина заголовка повестки
const MaxTitleLen = 200

// ValidatePayload проверяет обязательные поля документа перед записью в ledger.
// Дата на сервере только непустая, формат проверяет редактор на клиенте
func ValidatePayload(title, date string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	if strings.TrimSpace(date) == "" {
		return fmt.Errorf("date is required")
	}

	return nil
}

// ValidateMeetingInput проверяет ввод пользователя в редакторе
// Заголовок не пустой, дата в формате YYYY-MM-DD
func ValidateMeetingInput(title, date string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be blank")
	}

	if _, err := time.Parse(DateLayout, strings.TrimSpace(date)); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	return nil
}

// ValidateAgendaID проверяет идентификатор документа из пути запроса
func ValidateAgendaID(id string) error {
	if id == "" {
		return fmt.Errorf("agenda id cannot be empty")
	}
	if len(id) > 128 || strings.ContainsAny(id, "/ \t\n") {
		return fmt.Errorf("agenda id is malformed")
	}
	return nil
}
