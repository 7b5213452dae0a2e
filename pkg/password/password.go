package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLength — длина случайной per-user соли в байтах.
	saltLength = 64
	// keyLength — длина результирующего MAC в байтах.
	keyLength = 64
	// iterations — число итераций PBKDF2-SHA512.
	iterations = 210_000
)

// Hash хеширует пароль: генерирует случайную соль и вычисляет MAC пароля
// под этой солью (PBKDF2-SHA512). Хэш и соль хранятся раздельно.
func Hash(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash = pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return hash, salt, nil
}

// Verify перевычисляет MAC пароля под сохранённой солью и сравнивает
// с сохранённым хэшем. Сравнение выполняется всегда и над массивами
// одинаковой длины.
func Verify(password string, hash, salt []byte) bool {
	computed := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha512.New)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}
