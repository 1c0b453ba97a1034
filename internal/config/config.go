package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AuthServerPort string
	NoteServerPort string

	DBDriver string
	DBDSN    string
	MySQLDSN string

	RedisAddr string
	RedisDB   int
	RedisPass string

	Security SecuritySettings

	SwaggerHost     string
	LogLevel        string
	NoteRequireAuth bool
}

// SecuritySettings is shared by both services so tokens issued by the auth
// API validate in the note API.
type SecuritySettings struct {
	Issuer   string
	Audience string
	Secret   string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AuthServerPort: getEnv("AUTH_SERVER_PORT", "5000"),
		NoteServerPort: getEnv("NOTE_SERVER_PORT", "5001"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", ":memory:"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=UTC"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		Security: SecuritySettings{
			Issuer:   getEnv("JWT_ISSUER", "https://auth.noteauth.local"),
			Audience: getEnv("JWT_AUDIENCE", "https://api.noteauth.local"),
			Secret:   getEnv("JWT_SECRET", "change-me-to-a-long-random-secret"),
		},
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		NoteRequireAuth: getEnvBool("NOTE_API_REQUIRE_AUTH", false),
	}
}

// DatabaseDSN returns the DSN matching DBDriver.
func (c *Config) DatabaseDSN() string {
	if c.DBDriver == "mysql" {
		return c.MySQLDSN
	}
	return c.DBDSN
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
