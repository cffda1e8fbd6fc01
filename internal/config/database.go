package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("MONGODB_URI", ""),
		Database:       getEnv("MONGODB_DATABASE", "varsha_travels"),
		MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 50),
		MinPoolSize:    getEnvAsInt("MONGODB_MIN_POOL_SIZE", 2),
		ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		QueryTimeout:   getEnvAsDuration("MONGODB_QUERY_TIMEOUT", 10*time.Second),
	}
}
