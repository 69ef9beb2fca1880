package logger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todor/internal/logger"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todor.log")
	require.NoError(t, logger.Init(path, "debug"))

	logger.ErrorWithStack(errors.New("toggle failed"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "toggle failed")
}

func TestInitEmptyPathDisablesLogging(t *testing.T) {
	require.NoError(t, logger.Init("", "info"))
	// must not panic with the nop logger installed
	logger.ErrorWithStack(errors.New("dropped"))
}

func TestInitUnknownLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todor.log")
	assert.NoError(t, logger.Init(path, "chatty"))
}

func TestInitBadPath(t *testing.T) {
	err := logger.Init(filepath.Join(t.TempDir(), "missing", "todor.log"), "info")
	assert.Error(t, err)
}
