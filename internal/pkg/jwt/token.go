package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
)

// Claims represents standard JWT claims plus user identity fields
type Claims struct {
	UserID      uuid.UUID `json:"sub"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token for the user.
// TTL comes from config (minutes) and the token carries the access secret.
func GenerateAccessToken(user *models.User, cfg *models.Config) (string, int64, error) {
	ttl := time.Duration(cfg.JWT.AccessExpiration) * time.Minute
	return generate(user, cfg.JWT.AccessSecret, cfg.JWT.Issuer, ttl)
}

// GenerateRefreshToken signs a long-lived refresh token. It is signed with a
// secret distinct from the access secret, so an access-token compromise
// cannot be used to mint refresh tokens.
func GenerateRefreshToken(user *models.User, cfg *models.Config) (string, int64, error) {
	ttl := time.Duration(cfg.JWT.RefreshExpiration) * 24 * time.Hour
	return generate(user, cfg.JWT.RefreshSecret, cfg.JWT.Issuer, ttl)
}

func generate(user *models.User, secret, issuer string, ttl time.Duration) (string, int64, error) {
	expirationTime := time.Now().Add(ttl)

	claims := &Claims{
		UserID:      user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies signature and expiry and returns the claims.
// Verification is all-or-nothing: an expired token yields ErrTokenExpired,
// anything structurally or cryptographically wrong yields ErrTokenInvalid.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
