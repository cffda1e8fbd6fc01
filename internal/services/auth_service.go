package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"varsha-travels/internal/utils"
	"varsha-travels/internal/validators"
	"varsha-travels/pkg/logger"
)

type AuthService interface {
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*utils.AdminClaims, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthConfig struct {
	Email     string
	Password  string
	JWTSecret string
	TokenTTL  time.Duration
}

type authService struct {
	email     string
	password  string
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewAuthService checks logins against one configured admin. Without a
// JWT secret a random one is generated, so tokens die with the process.
func NewAuthService(cfg AuthConfig, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.Discard()
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret = utils.GenerateSecret()
		log.Warn("ADMIN_JWT_SECRET not set, admin tokens will not survive a restart")
	}
	return &authService{
		email:     utils.NormalizeEmail(cfg.Email),
		password:  cfg.Password,
		jwtSecret: secret,
		tokenTTL:  cfg.TokenTTL,
		now:       time.Now,
		logger:    log,
	}
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	email := utils.NormalizeEmail(request.Email)
	if email == "" {
		return nil, validators.NewValidationError("email", utils.MsgEmailRequired)
	}
	if request.Password == "" {
		return nil, validators.NewValidationError("password", utils.MsgPasswordRequired)
	}

	if s.email == "" || s.password == "" {
		s.logger.Error("admin login attempted but ADMIN_EMAIL or ADMIN_PASSWORD is not set")
		return nil, ErrAdminNotConfigured
	}

	// both checks always run so timing does not reveal which one failed
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passwordOK := s.checkPassword(request.Password)
	if !emailOK || !passwordOK {
		s.logger.LogSecurityEvent("admin_login_failed", "medium", map[string]interface{}{
			"email": utils.MaskEmail(email),
		})
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(email, s.jwtSecret, s.tokenTTL, s.now())
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Message:   utils.MsgLoginSuccessful,
		Email:     email,
		Token:     token.Token,
		TokenType: token.TokenType,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*utils.AdminClaims, error) {
	claims, err := utils.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(claims.Email), []byte(s.email)) != 1 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// checkPassword accepts either the plain configured password or a bcrypt
// hash of it.
func (s *authService) checkPassword(password string) bool {
	if isBcryptHash(s.password) {
		return bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
