package auth

import (
	"strings"
	"testing"

	"skyvault/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherTestConfig(cost int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: cost},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	// bcrypt caps input at 72 bytes; longer input must error, not truncate.
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a", 80))

	assert.Error(t, err)
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	// Out-of-range and missing costs fall back to the library default.
	for _, cfg := range []*config.Config{
		{},
		newHasherTestConfig(bcrypt.MaxCost + 1),
		newHasherTestConfig(-1),
	} {
		hasher := NewBcryptHasher(cfg)

		hash, err := hasher.Hash("Password123!")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	}
}

func TestBcryptHasher_CheckAgainstGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherTestConfig(bcrypt.MinCost))

	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("Password123!", ""))
}
