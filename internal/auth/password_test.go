package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("super_password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, h.Verify("super_password123", hash))
	assert.False(t, h.Verify("wrong_password", hash))
}

func TestHasher_SamePasswordDifferentHashes(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("password1")
	assert.NoError(t, err)
	second, err := h.Hash("password1")
	assert.NoError(t, err)

	// bcrypt солит каждый хеш
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("password1", first))
	assert.True(t, h.Verify("password1", second))
}

func TestNewHasher_DefaultCost(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)

	h = NewHasher(-5)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)

	h = NewHasher(12)
	assert.Equal(t, 12, h.Cost)
}
