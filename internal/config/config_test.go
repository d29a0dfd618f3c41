package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092, ,b:9092 "))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DB_DRIVER", "MY_SECRET", "STRICT_STATUS_CODES", "ENFORCE_OWNERSHIP", "TOKEN_TTL_HOURS", "ES_INDEX"} {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET", "fallback")

	cfg := Load()
	assert.Equal(t, 4000, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []byte("fallback"), cfg.JWTSecret)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.StrictStatusCodes)
	assert.False(t, cfg.EnforceOwnership)
	assert.Equal(t, "products", cfg.ESIndex)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MY_SECRET", "primary")
	t.Setenv("JWT_SECRET", "fallback")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("STRICT_STATUS_CODES", "true")
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	require.Equal(t, []byte("primary"), cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:shop.db?_pragma=foreign_keys(1)", cfg.DatabaseURL)
	assert.True(t, cfg.StrictStatusCodes)
	assert.Equal(t, 4000, cfg.ServerPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}
