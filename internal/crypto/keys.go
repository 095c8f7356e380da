package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Params параметры Argon2id для хеширования секрета группы
type Params struct {
	Time    uint32 // количество итераций
	Memory  uint32 // объем памяти в KB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams параметры по умолчанию (64MB, 1 итерация, 4 потока)
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

// SaltSize размер соли в байтах
const SaltSize = 16

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// deriveKey считает Argon2id от секрета с солью
func deriveKey(secret string, salt []byte, p Params) []byte {
	return argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// HashSecret генерирует новую соль и возвращает hex(hash), hex(salt)
func HashSecret(secret string, p Params) (string, string, error) {
	if secret == "" {
		return "", "", fmt.Errorf("secret cannot be empty")
	}

	salt, err := GenerateSalt()
	if err != nil {
		return "", "", err
	}

	hash := deriveKey(secret, salt, p)
	return hex.EncodeToString(hash), hex.EncodeToString(salt), nil
}
