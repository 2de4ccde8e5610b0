package jwt

import (
	"errors"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// Claims are the sandbox rider token claims
type Claims struct {
	RiderID string `json:"rider_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given rider
func GenerateToken(riderID, email string, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"rider_id": riderID,
		"email":    email,
		"exp":      expiresAt,
		"iss":      cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates an HS256 token and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// IsExpired reports whether tokenString is a JWT whose exp claim lies before now.
// The signature is not checked; the client never holds the server's key.
// Opaque tokens and tokens without exp are never considered expired.
func IsExpired(tokenString string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}

	return now.Unix() >= int64(exp)
}
