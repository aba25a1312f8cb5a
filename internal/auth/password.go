package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher хеширует пароли через bcrypt
type Hasher struct {
	Cost int
}

// NewHasher создает Hasher. cost <= 0 означает стоимость по умолчанию (10).
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash создает bcrypt хеш пароля
func (h *Hasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	return string(bytes), err
}

// Verify проверяет пароль против хеша
func (h *Hasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
