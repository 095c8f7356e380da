package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrSecretMismatch возвращается, если секрет не совпал с сохраненным хешем
var ErrSecretMismatch = errors.New("secret mismatch")

// VerifySecret проверяет секрет против сохраненных hex хеша и соли.
// Сравнение выполняется за постоянное время
func VerifySecret(secret, hashHex, saltHex string, p Params) error {
	if hashHex == "" || saltHex == "" {
		return fmt.Errorf("stored hash and salt cannot be empty")
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return fmt.Errorf("failed to decode hash: %w", err)
	}

	// длина ключа берется из сохраненного хеша, чтобы смена KeyLen не ломала старые группы
	p.KeyLen = uint32(len(expected))
	computed := deriveKey(secret, salt, p)

	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrSecretMismatch
	}

	return nil
}

// ConstantTimeEqual сравнивает строки за постоянное время
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
