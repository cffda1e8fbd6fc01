package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      *AppConfig      `yaml:"app"`
	Database *DatabaseConfig `yaml:"database"`
	Redis    *RedisConfig    `yaml:"redis"`
	SMS      *SMSConfig      `yaml:"sms"`
	Storage  *StorageConfig  `yaml:"storage"`
	Events   *EventsConfig   `yaml:"events"`
	Admin    *AdminConfig    `yaml:"admin"`
	Log      *LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name            string        `yaml:"name"`
	Environment     string        `yaml:"environment"`
	Port            int           `yaml:"port"`
	Host            string        `yaml:"host"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	UploadMaxBytes  int64         `yaml:"upload_max_bytes"`
	UploadMaxWidth  uint          `yaml:"upload_max_width"`
	UploadMaxPixels int64         `yaml:"upload_max_pixels"`
	UploadFolder    string        `yaml:"upload_folder"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads .env (if present), builds the config from the environment and
// overlays the yaml file named by CONFIG_PATH.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		App:      loadAppConfig(),
		Database: loadDatabaseConfig(),
		Redis:    loadRedisConfig(),
		SMS:      loadSMSConfig(),
		Storage:  loadStorageConfig(),
		Events:   loadEventsConfig(),
		Admin:    loadAdminConfig(),
		Log:      loadLogConfig(),
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := config.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Database == nil || strings.TrimSpace(c.Database.URI) == "" {
		return errors.New("MONGODB_URI is required")
	}
	if c.Storage == nil {
		return errors.New("storage config is missing")
	}
	return c.Storage.Validate()
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:            getEnv("APP_NAME", "Varsha Travels"),
		Environment:     getEnv("APP_ENV", "development"),
		Port:            getEnvAsInt("PORT", 5000),
		Host:            getEnv("APP_HOST", ""),
		CORSOrigins:     getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
		ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		UploadMaxBytes:  int64(getEnvAsInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		UploadMaxWidth:  uint(getEnvAsInt("UPLOAD_MAX_WIDTH", 2000)),
		UploadMaxPixels: int64(getEnvAsInt("UPLOAD_MAX_PIXELS", 40_000_000)),
		UploadFolder:    getEnv("UPLOAD_FOLDER", "varsha_travels"),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Format:     getEnv("LOG_FORMAT", "json"),
		Output:     getEnv("LOG_FILE", "stdout"),
		MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 50),
		MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 5),
		MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated value, dropping blank entries.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}
