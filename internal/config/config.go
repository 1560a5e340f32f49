package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the marketplace API.
type Config struct {
	AppPort  string
	Env      string
	LogLevel string

	JWTSecret string
	TokenTTL  time.Duration

	StoreDriver   string
	DatabaseDSN   string
	MongoURI      string
	MongoDatabase string

	CacheDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PriceCacheTTL time.Duration

	RabbitMQURL   string
	RabbitMQQueue string

	DataGovAPIKey string
	CORSOrigins   string
}

const devSecret = "krishiseva_dev_secret"

var (
	storeDrivers = map[string]bool{"sqlite": true, "postgres": true, "mongo": true, "memory": true}
	cacheDrivers = map[string]bool{"memory": true, "redis": true}
)

// Load reads an optional .env file and resolves configuration from the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("STORE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:krishiseva.db?cache=shared")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "krishiseva")
	v.SetDefault("CACHE_DRIVER", "memory")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PRICE_CACHE_TTL", "5m")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "order_events")
	v.SetDefault("DATA_GOV_API_KEY", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:       v.GetString("APP_PORT"),
		Env:           strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:      v.GetString("LOG_LEVEL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		MongoURI:      v.GetString("MONGODB_URI"),
		MongoDatabase: v.GetString("MONGODB_DATABASE"),
		CacheDriver:   strings.ToLower(v.GetString("CACHE_DRIVER")),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		PriceCacheTTL: v.GetDuration("PRICE_CACHE_TTL"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		RabbitMQQueue: v.GetString("RABBITMQ_QUEUE"),
		DataGovAPIKey: v.GetString("DATA_GOV_API_KEY"),
		CORSOrigins:   v.GetString("CORS_ORIGINS"),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET must be set outside development")
		}
		cfg.JWTSecret = devSecret
	}
	if !storeDrivers[cfg.StoreDriver] {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (supported: sqlite, postgres, mongo, memory)", cfg.StoreDriver)
	}
	if !cacheDrivers[cfg.CacheDriver] {
		return nil, fmt.Errorf("unsupported CACHE_DRIVER %q (supported: memory, redis)", cfg.CacheDriver)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.PriceCacheTTL <= 0 {
		return nil, fmt.Errorf("PRICE_CACHE_TTL must be positive, got %s", cfg.PriceCacheTTL)
	}
	return cfg, nil
}

// IsDevelopment reports whether the app runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "test"
}

// UsesDemoPrices reports whether no real data.gov.in key is configured.
func (c *Config) UsesDemoPrices() bool {
	return c.DataGovAPIKey == "" || c.DataGovAPIKey == "your_api_key_here"
}
