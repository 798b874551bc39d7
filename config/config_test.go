package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posada/config"
)

func TestInit(t *testing.T) {
	// No .env file exists in the test working directory; a missing file is
	// only a warning and must not surface as an Init error.
	require.NoError(t, config.Init())
	require.NoError(t, config.Init())

	cfg := config.Get()
	require.NotNil(t, cfg)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "posada.reservations", cfg.Kafka.Topic)
}
