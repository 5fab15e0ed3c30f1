package auth

import (
	"testing"

	"gobarber/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newHasherTestConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	password := "123456"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))
	password := "123456"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(newHasherTestConfig(customCost))

	hash, err := hasher.Hash("123456")
	assert.NoError(t, err)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_DefaultCostWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("123456")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
