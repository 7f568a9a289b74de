package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadComPadroes(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "escalas", cfg.DB.Name)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origens)
}

func TestLoadLeAmbiente(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "banco")
	t.Setenv("DB_SSL_MODE_DISABLE", "true")
	t.Setenv("CORS_ORIGENS", "http://localhost:3000, https://escalas.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "banco", cfg.DB.Host)
	assert.True(t, cfg.DB.SSLDisable)
	assert.Equal(t, []string{"http://localhost:3000", "https://escalas.example.com"}, cfg.CORS.Origens)
}
