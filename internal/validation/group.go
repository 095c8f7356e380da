package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// GroupCodePattern определяет допустимый формат кода группы после нормализации
// Только латинские буквы в нижнем регистре, цифры, дефис и нижнее подчеркивание
// Длина: 3-32 символа
var GroupCodePattern = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

const (
	// MinGroupCodeLen минимальная длина кода группы
	MinGroupCodeLen = 3
	// MaxGroupCodeLen максимальная длина кода группы
	MaxGroupCodeLen = 32
	// MaxSecretLen ограничивает размер секрета, который мы хешируем
	MaxSecretLen = 256
)

// NormalizeGroupCode обрезает пробелы и приводит код к нижнему регистру
func NormalizeGroupCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidateGroupCode проверяет уже нормализованный код группы
func ValidateGroupCode(code string) error {
	if code == "" {
		return fmt.Errorf("group code cannot be empty")
	}

	if len(code) < MinGroupCodeLen {
		return fmt.Errorf("group code must be at least %d characters long", MinGroupCodeLen)
	}

	if len(code) > MaxGroupCodeLen {
		return fmt.Errorf("group code must not exceed %d characters", MaxGroupCodeLen)
	}

	if !GroupCodePattern.MatchString(code) {
		return fmt.Errorf("group code can only contain letters (a-z), numbers (0-9), '-' and '_'")
	}

	return nil
}

// ValidateSecret проверяет секрет группы. Секрет не нормализуется,
// только пробелы по краям считаются ошибкой ввода и отбрасываются вызывающим кодом
func ValidateSecret(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	if len(secret) > MaxSecretLen {
		return fmt.Errorf("secret must not exceed %d characters", MaxSecretLen)
	}

	return nil
}

// ValidateGroupName проверяет отображаемое имя группы
func ValidateGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	return nil
}
