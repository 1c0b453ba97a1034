package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"AUTH_SERVER_PORT", "DB_DRIVER", "DB_DSN", "REDIS_ADDR", "JWT_SECRET", "NOTE_API_REQUIRE_AUTH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.AuthServerPort)
	assert.Equal(t, "5001", cfg.NoteServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.DBDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.NotEmpty(t, cfg.Security.Secret)
	assert.False(t, cfg.NoteRequireAuth)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AUTH_SERVER_PORT", "9000")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_ISSUER", "issuer")
	t.Setenv("JWT_AUDIENCE", "audience")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("NOTE_API_REQUIRE_AUTH", "true")

	cfg := Load()

	assert.Equal(t, "9000", cfg.AuthServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, SecuritySettings{Issuer: "issuer", Audience: "audience", Secret: "secret"}, cfg.Security)
	assert.True(t, cfg.NoteRequireAuth)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("NOTE_API_REQUIRE_AUTH", "maybe")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.NoteRequireAuth)
}

func TestConfig_DatabaseDSN(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DBDSN: ":memory:", MySQLDSN: "user@tcp(db)/app"}
	assert.Equal(t, ":memory:", cfg.DatabaseDSN())

	cfg.DBDriver = "mysql"
	assert.Equal(t, "user@tcp(db)/app", cfg.DatabaseDSN())
}
