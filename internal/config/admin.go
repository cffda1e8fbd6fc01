package config

import (
	"strings"
	"time"
)

type AdminConfig struct {
	Email       string        `yaml:"email"`
	Password    string        `yaml:"password"`
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
	RequireAuth bool          `yaml:"require_auth"`
}

func loadAdminConfig() *AdminConfig {
	return &AdminConfig{
		Email:       strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", ""))),
		Password:    getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:   getEnv("ADMIN_JWT_SECRET", ""),
		TokenTTL:    getEnvAsDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		RequireAuth: getEnvAsBool("ADMIN_REQUIRE_AUTH", false),
	}
}

// Configured reports whether both admin credentials are present.
func (a *AdminConfig) Configured() bool {
	return a != nil && a.Email != "" && a.Password != ""
}
