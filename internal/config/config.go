package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the runtime settings of the server and CLI tools
type Config struct {
	Env        string
	ServerPort string

	DB *DBConfig

	JWTSecret     string
	JWTAccessTTL  time.Duration
	JWTRefreshTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	TaskCacheTTL  time.Duration
}

// Load reads the configuration from environment variables. The caller is
// expected to have loaded a .env file beforehand if one is used.
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	accessTTL, err := durationEnv("JWT_ACCESS_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := durationEnv("JWT_REFRESH_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := durationEnv("TASK_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	redisTLS, err := boolEnv("REDIS_TLS", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:           getEnv("APP_ENV", EnvDevelopment),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DB:            dbCfg,
		JWTSecret:     jwtSecret,
		JWTAccessTTL:  accessTTL,
		JWTRefreshTTL: refreshTTL,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisTLS:      redisTLS,
		TaskCacheTTL:  cacheTTL,
	}, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}
