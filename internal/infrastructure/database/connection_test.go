package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/shared/config"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite"}

	gdb, err := Open(cfg)
	require.NoError(t, err)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitAndClose(t *testing.T) {
	require.NoError(t, Init(&config.DatabaseConfig{Driver: "sqlite"}))
	assert.NotNil(t, Get())

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}
