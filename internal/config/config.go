package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const MinBcryptCost = 10

type Config struct {
	DBUrl      string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	ServerPort string
	BcryptCost int

	CORSOrigins    []string
	StrictNotFound bool
	AuditAsync     bool
	LogLevel       string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		DBUrl:      getEnv("DATABASE_URL", getEnv("DB_URL", "")),
		DBPath:     getEnv("DB_PATH", "./hrms.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", getEnv("PORT", "5000")),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("TOKEN_TTL: must not be negative")
	}
	cfg.TokenTTL = ttl

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(MinBcryptCost)))
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	cfg.BcryptCost = max(cost, MinBcryptCost)

	if cfg.StrictNotFound, err = getBool("STRICT_NOT_FOUND", false); err != nil {
		return nil, err
	}
	if cfg.AuditAsync, err = getBool("AUDIT_ASYNC", true); err != nil {
		return nil, err
	}

	for _, o := range strings.Split(getEnv("CORS_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

// Hosted reports whether the store is a remote postgres instance.
func (c *Config) Hosted() bool {
	return c.DBUrl != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
