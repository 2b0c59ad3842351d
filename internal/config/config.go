package config

import (
	"os"
	"time"
)

type Config struct {
	Port      string
	JWTSecret string
	DataDir   string
	PublicDir string
	TokenTTL  time.Duration
}

func Load() Config {
	return Config{
		Port:      getEnv("PORT", "4000"),
		JWTSecret: getEnv("JWT_SECRET", "secret"),
		DataDir:   getEnv("DATA_DIR", "data"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),
		TokenTTL:  7 * 24 * time.Hour,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
