package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todor/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.API.BaseURL)
	assert.Equal(t, "posts", cfg.API.DeleteResource)
	assert.Equal(t, 200, cfg.API.MaxTodoID)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "todor.log", cfg.Log.File)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TODOR_API_BASE_URL", "http://localhost:8080")
	t.Setenv("TODOR_API_DELETE_RESOURCE", "todos")
	t.Setenv("TODOR_API_MAX_TODO_ID", "500")
	t.Setenv("TODOR_LOG_LEVEL", "debug")
	t.Setenv("TODOR_LOG_FILE", "")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "todos", cfg.API.DeleteResource)
	assert.Equal(t, 500, cfg.API.MaxTodoID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}
