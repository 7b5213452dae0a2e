package verification

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes — длина токена подтверждения в байтах до hex-кодирования.
const tokenBytes = 64

// GenerateToken генерирует криптографически стойкий токен подтверждения
// email: 128 hex-символов, встраивается в ссылку письма.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
