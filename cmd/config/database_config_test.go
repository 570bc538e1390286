package config

import (
	"Pantry-Backend/internal/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSN_UsesConfiguredSSLMode(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "pantry")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pantry")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("APP_TIMEZONE", "UTC")
	_ = utils.LoadConfig("does-not-exist.yaml")

	assert.Equal(t,
		"host=db.internal user=pantry password=secret dbname=pantry port=6543 sslmode=disable TimeZone=UTC",
		DSN(),
	)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")
	_ = utils.LoadConfig("does-not-exist.yaml")

	assert.Equal(t, time.UTC, Location())
}
