// Package config holds the storefront service configuration, loaded from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/ElisioMassango/chelevi-sub001/pkg/config"
	"github.com/ElisioMassango/chelevi-sub001/pkg/database"
)

// Config is the full service configuration.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"storefront-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Commerce CommerceConfig
	Gateways GatewayConfig
	Owner    OwnerConfig
	Store    StoreConfig
	Tracing  TracingConfig
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// PostgresConfig configures the order and reservation store.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"storefront"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"storefront"`
	Database string `env:"POSTGRES_DB" envDefault:"storefront"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

// RedisConfig configures the cart and preference store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// KafkaConfig configures event publishing.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"storefront.events"`
}

// CommerceConfig points at the commerce backend API.
type CommerceConfig struct {
	BaseURL string        `env:"COMMERCE_BASE_URL,required"`
	Timeout time.Duration `env:"COMMERCE_TIMEOUT" envDefault:"10s"`
}

// GatewayConfig points at the external delivery and payment gateways.
type GatewayConfig struct {
	EmailBaseURL    string        `env:"EMAIL_GATEWAY_URL,required"`
	WhatsAppBaseURL string        `env:"WHATSAPP_GATEWAY_URL,required"`
	MpesaBaseURL    string        `env:"MPESA_GATEWAY_URL,required"`
	Timeout         time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"15s"`
}

// OwnerConfig holds the store owner's notification endpoints.
type OwnerConfig struct {
	Email    string `env:"OWNER_EMAIL,required"`
	WhatsApp string `env:"OWNER_WHATSAPP,required"`
}

// StoreConfig holds storefront identity used in customer-facing messages.
type StoreConfig struct {
	Name string `env:"STORE_NAME" envDefault:"Chelevi"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled      bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	SampleRate   float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// DatabaseConfig converts to the shared Postgres pool configuration.
func (c *Config) DatabaseConfig() *database.PostgresConfig {
	cfg := database.DefaultPostgresConfig()
	cfg.Host = c.Postgres.Host
	cfg.Port = c.Postgres.Port
	cfg.User = c.Postgres.User
	cfg.Password = c.Postgres.Password
	cfg.DBName = c.Postgres.Database
	cfg.SSLMode = c.Postgres.SSLMode
	cfg.MaxConns = c.Postgres.MaxConns
	return &cfg
}
