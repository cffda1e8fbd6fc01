package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type AdminToken struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func GenerateAdminToken(email, secretKey string, ttl time.Duration, now time.Time) (*AdminToken, error) {
	if ttl <= 0 {
		ttl = DefaultAdminTokenTTL
	}
	expiresAt := now.Add(ttl)

	claims := &AdminClaims{
		Email: email,
		Role:  AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    AppName,
			Subject:   email,
			ID:        GenerateRandomString(16),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, err
	}

	return &AdminToken{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func ValidateToken(tokenString, secretKey string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(AppName))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		if claims.Role != AdminRole {
			return nil, errors.New("token is not an admin token")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
