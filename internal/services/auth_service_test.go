package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"varsha-travels/internal/validators"
)

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(AuthConfig{
		Email:     " Admin@VarshaTravels.in ",
		Password:  "s3cret",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "ADMIN@varshatravels.in  ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "admin@varshatravels.in", resp.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@varshatravels.in", claims.Email)
}

func TestAuthService_MismatchMessagesAreIdentical(t *testing.T) {
	svc := NewAuthService(AuthConfig{Email: "admin@varsha.in", Password: "s3cret"}, nil)

	_, wrongPassword := svc.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in", Password: "nope"})
	_, wrongEmail := svc.Login(context.Background(), &LoginRequest{Email: "other@varsha.in", Password: "s3cret"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), wrongEmail.Error())
}

func TestAuthService_MissingInput(t *testing.T) {
	svc := NewAuthService(AuthConfig{Email: "admin@varsha.in", Password: "s3cret"}, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "  ", Password: "x"})
	require.True(t, validators.IsValidationError(err))
	assert.Equal(t, "Email is required", err.Error())

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in"})
	require.True(t, validators.IsValidationError(err))
	assert.Equal(t, "Password is required", err.Error())
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(AuthConfig{Email: "admin@varsha.in"}, nil)
	_, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in", Password: "x"})
	assert.ErrorIs(t, err, ErrAdminNotConfigured)
}

func TestAuthService_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(AuthConfig{Email: "admin@varsha.in", Password: string(hash)}, nil)

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in", Password: "s3cret"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in", Password: string(hash)})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RejectsForeignTokens(t *testing.T) {
	a := NewAuthService(AuthConfig{Email: "admin@varsha.in", Password: "x"}, nil)
	b := NewAuthService(AuthConfig{Email: "admin@varsha.in", Password: "x"}, nil)

	resp, err := a.Login(context.Background(), &LoginRequest{Email: "admin@varsha.in", Password: "x"})
	require.NoError(t, err)

	// b generated its own random secret
	_, err = b.ValidateToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.ValidateToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
