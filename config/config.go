package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Storage StorageConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	// Driver selects the document-store backend: "jsonfile" or "sqlite".
	Driver string
	// DataDir holds the collection files for the jsonfile driver.
	DataDir string
	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string
	// LockTimeout bounds how long a mutation waits for a collection lock.
	LockTimeout time.Duration
}

type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "jsonfile"),
			DataDir:     getEnv("STORAGE_DATA_DIR", "./data"),
			SQLitePath:  getEnv("STORAGE_SQLITE_PATH", "./data/inventory.db"),
			LockTimeout: time.Duration(getEnvInt("STORAGE_LOCK_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
			TokenTTL:  time.Duration(getEnvInt("JWT_TOKEN_TTL_MINUTES", 720)) * time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
