package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const minJWTSecretLength = 32

type Config struct {
	DBDriver    string `envconfig:"DB_DRIVER"    default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH"  default:"catalog.db"`
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":8080"`
	GrpcPort    string `envconfig:"GRPC_PORT"    default:":50051"` // gRPC health endpoint
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`

	JWT JWTConfig

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`

	RedisURL        string        `envconfig:"REDIS_URL"`
	ProductCacheTTL time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"5m"`

	RabbitMQURL    string `envconfig:"RABBITMQ_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"catalog.events"`

	SeedData        bool          `envconfig:"SEED_DATA"        default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// JWTConfig is read from JWT_SECRET, JWT_ISSUER, JWT_AUDIENCE and JWT_EXPIRATION_HOURS.
type JWTConfig struct {
	Secret          string `envconfig:"SECRET"           required:"true"`
	Issuer          string `envconfig:"ISSUER"           default:"ProductCatalogAPI"`
	Audience        string `envconfig:"AUDIENCE"         default:"ProductCatalogClient"`
	ExpirationHours int    `envconfig:"EXPIRATION_HOURS" default:"24"`
}

func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads the optional .env file and the process environment once.
// Invalid configuration is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, DB Driver=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.DBDriver, config.LogLevel)
		if config.RedisURL == "" {
			logger.Info("Configuration loaded: REDIS_URL not set, product cache disabled")
		}
		if config.RabbitMQURL == "" {
			logger.Info("Configuration loaded: RABBITMQ_URL not set, catalog events disabled")
		}
	})
	return &config
}

// Process builds a Config from the environment without touching the loaded singleton.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER is postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH cannot be empty when DB_DRIVER is sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters long", minJWTSecretLength)
	}
	if c.JWT.ExpirationHours <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be positive")
	}
	return nil
}
