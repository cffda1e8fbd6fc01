package config

import (
	"time"
)

type EventsConfig struct {
	WebSocket *WebSocketConfig `yaml:"websocket"`
	Kafka     *KafkaConfig     `yaml:"kafka"`
}

type WebSocketConfig struct {
	Enabled         bool          `yaml:"enabled"`
	ReadBufferSize  int           `yaml:"read_buffer_size"`
	WriteBufferSize int           `yaml:"write_buffer_size"`
	PingInterval    time.Duration `yaml:"ping_interval"`
	PongTimeout     time.Duration `yaml:"pong_timeout"`
	MaxConnections  int           `yaml:"max_connections"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

func loadEventsConfig() *EventsConfig {
	return &EventsConfig{
		WebSocket: &WebSocketConfig{
			Enabled:         getEnvAsBool("WEBSOCKET_ENABLED", true),
			ReadBufferSize:  getEnvAsInt("WEBSOCKET_READ_BUFFER_SIZE", 1024),
			WriteBufferSize: getEnvAsInt("WEBSOCKET_WRITE_BUFFER_SIZE", 1024),
			PingInterval:    getEnvAsDuration("WEBSOCKET_PING_INTERVAL", 54*time.Second),
			PongTimeout:     getEnvAsDuration("WEBSOCKET_PONG_TIMEOUT", 60*time.Second),
			MaxConnections:  getEnvAsInt("WEBSOCKET_MAX_CONNECTIONS", 100),
			AllowedOrigins:  getEnvAsSlice("WEBSOCKET_ALLOWED_ORIGINS", []string{"*"}),
		},
		Kafka: &KafkaConfig{
			Brokers:      getEnvAsSlice("KAFKA_BROKERS", nil),
			Topic:        getEnv("KAFKA_TOPIC", "varsha.resource-events"),
			WriteTimeout: getEnvAsDuration("KAFKA_WRITE_TIMEOUT", 5*time.Second),
		},
	}
}

func (k *KafkaConfig) Enabled() bool {
	return k != nil && len(k.Brokers) > 0 && k.Topic != ""
}
