package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/core/domain"
)

func TestConfigShow(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.values = map[string]string{"data.base": "https://example.org/d1"}

	out, err := execute("config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Config file: /tmp/runoff/config.toml")
	assert.Regexp(t, `dashboard\.top_n\s+\(default\)`, out)
	assert.Regexp(t, `data\.base\s+https://example\.org/d1`, out)
}

func TestConfig_DefaultsToShow(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config")

	require.NoError(t, err)
	assert.Contains(t, out, "dashboard.top_n")
}

func TestConfigSet(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("config", "set", "dashboard.top_n", "5")

	require.NoError(t, err)
	assert.Equal(t, "5", ts.settings.values["dashboard.top_n"])
	assert.Contains(t, out, "dashboard.top_n = 5")
}

func TestConfigSet_Invalid(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.settings.SetErr = domain.ErrInvalidInput

	_, err := execute("config", "set", "dashboard.top_n", "zero")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigSet_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("config", "set", "dashboard.top_n")

	assert.Error(t, err)
}
