package initializer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/amirasaad/user-management/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Prefix: "[users]"})

	logger.Info("User created", "userID", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "User created", line["msg"])
	assert.Equal(t, "[users]", line["prefix"])
	assert.Contains(t, line, "userID")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	// charmbracelet levels: -4 debug, 0 info, 4 warn, 8 error
	logger := newLogger(&buf, &config.Log{Format: "text", Level: 4})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitializeDependencies_NoDatabaseURL(t *testing.T) {
	cfg := &config.App{
		Env: "test",
		Log: &config.Log{Format: "text"},
		DB:  &config.DB{},
	}
	deps, closeFn, err := InitializeDependencies(cfg)
	require.Error(t, err)
	assert.Nil(t, deps)
	assert.Nil(t, closeFn)
}
