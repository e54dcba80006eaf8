// Package auth implements session tokens and password hashing for the
// calendar server. Tokens carry an issuance-time snapshot of the user's
// identity and role; role changes do not revoke already-issued tokens
// (expiry-only invalidation).
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"teamcal/internal/common"
	"teamcal/internal/server/models"
)

// Claims is the signed claim set: identity and role facts plus the
// standard expiry. Downstream components trust it verbatim for the life
// of the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"uid"`
	DisplayName string `json:"name"`
	Color       string `json:"color"`
	Role        string `json:"role"`
}

// UserRole returns the role carried by the claims.
func (c *Claims) UserRole() models.Role { return models.ParseRole(c.Role) }

// GenerateToken issues an HS256-signed token for the user with an absolute
// expiry of validityDuration from now.
func GenerateToken(user *models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Color:       user.Color,
		Role:        user.Role.String(),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the claim set.
// Expired tokens yield common.ErrTokenExpired; any other verification
// failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
