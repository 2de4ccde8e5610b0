package jwt

import (
	"testing"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "fastbuka-test",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		riderID string
		email   string
	}{
		{name: "Valid token generation", riderID: "rider-1", email: "john@x.com"},
		{name: "Empty email", riderID: "rider-2", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			before := time.Now()

			token, expiresAt, err := GenerateToken(tt.riderID, tt.email, cfg)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.GreaterOrEqual(t, expiresAt, before.Add(59*time.Minute).Unix())

			claims, err := ValidateToken(token, cfg.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.riderID, claims.RiderID)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, cfg.Issuer, claims.Issuer)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("rider-1", "john@x.com", getTestConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "another-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	cfg.Expiration = -5

	token, _, err := GenerateToken("rider-1", "john@x.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "Expired", token: sign(jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), want: true},
		{name: "Valid", token: sign(jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}), want: false},
		{name: "No exp claim", token: sign(jwt.MapClaims{"sub": "x"}), want: false},
		{name: "Opaque token", token: "T1", want: false},
		{name: "Empty", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.token, now))
		})
	}
}
