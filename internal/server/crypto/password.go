// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Params — параметры вывода хэша пароля.
type PBKDF2Params struct {
	Iterations int
	KeyLen     int
	SaltLen    int
}

// DefaultParams — 310000 итераций SHA-256, ключ 32 байта, соль 16 байт.
// С этими параметрами записаны все существующие пароли.
func DefaultParams() PBKDF2Params {
	return PBKDF2Params{
		Iterations: 310000,
		KeyLen:     32,
		SaltLen:    16,
	}
}

// NewSalt возвращает hex-строку из p.SaltLen случайных байт (32 символа для 16 байт).
func NewSalt(p PBKDF2Params) (string, error) {
	if p.SaltLen <= 0 {
		return "", errors.New("salt length must be positive")
	}
	b := make([]byte, p.SaltLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword возвращает hex(PBKDF2-HMAC-SHA256(password, salt)).
//
// В KDF идут байты hex-строки соли, а не декодированные байты:
// так записаны уже существующие хэши.
// Одинаковые password и salt всегда дают один и тот же результат.
func HashPassword(password, salt string, p PBKDF2Params) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), p.Iterations, p.KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword пересчитывает хэш с сохранённой солью и сравнивает
// за постоянное время.
func VerifyPassword(password, salt, wantHash string, p PBKDF2Params) bool {
	got := HashPassword(password, salt, p)
	return subtle.ConstantTimeCompare([]byte(got), []byte(wantHash)) == 1
}
