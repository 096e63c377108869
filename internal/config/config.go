package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	BcryptCost  int
	CORSOrigins string
	DataDir     string
	ChromePath  string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTL:      getDuration("JWT_TTL", 7*24*time.Hour),
		BcryptCost:  getInt("BCRYPT_COST", 12),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DataDir:     getEnv("DATA_DIR", "data"),
		ChromePath:  getEnv("CHROME_PATH", ""),
	}
}

func (c *Config) IsProd() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
