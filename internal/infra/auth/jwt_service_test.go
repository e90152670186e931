package auth

import (
	"testing"
	"time"

	"skyvault/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "buyer@example.com", "buyer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "buyer", claims.Role)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "buyer@example.com", "buyer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token + "x")

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newJWTTestConfig(time.Hour)
	otherCfg.JWT.Secret = "a_completely_different_secret_value"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), "buyer@example.com", "buyer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	// Sign an already expired token with the same secret.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "buyer@example.com",
		"role":  "buyer",
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	// alg=none gets refused before any claim is read.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbageSubject(t *testing.T) {
	svc, err := NewJWTService(newJWTTestConfig(time.Hour))
	require.NoError(t, err)

	now := time.Now()
	bad := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	tokenString, err := bad.SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}
