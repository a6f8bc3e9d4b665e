package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreleave/shoreleave/pkg/errors"
)

func TestGetStringFallsBackToOSEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("SHORELEAVE_TEST_KEY", "from-env")

	assert.Equal(t, "from-env", GetString("SHORELEAVE_TEST_KEY"))
}

func TestGetStringPrefersViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SHORELEAVE_TEST_KEY", "from-env")
	viper.Set("SHORELEAVE_TEST_KEY", "from-viper")

	assert.Equal(t, "from-viper", GetString("SHORELEAVE_TEST_KEY"))
}

func TestRequireMissingKey(t *testing.T) {
	viper.Reset()

	_, err := Require("SHORELEAVE_MISSING_KEY")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrAPIKeyRequired)
	assert.Contains(t, err.Error(), "SHORELEAVE_MISSING_KEY")
}

func TestNotionConfig(t *testing.T) {
	viper.Reset()
	t.Setenv(KeyNotionAPIKey, "secret")
	t.Setenv(KeyExcursionsDatabase, "db-excursions")
	t.Setenv(KeyCatalogDatabase, "db-catalog")

	cfg, err := Notion()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "db-excursions", cfg.ExcursionsDatabaseID)
	assert.Equal(t, "db-catalog", cfg.CatalogDatabaseID)
	assert.Empty(t, cfg.PeopleDatabaseID)
}

func TestNotionConfigRequiresAPIKey(t *testing.T) {
	viper.Reset()
	t.Setenv(KeyNotionAPIKey, "")

	_, err := Notion()
	assert.ErrorIs(t, err, errors.ErrAPIKeyRequired)
}

func TestGeminiConfig(t *testing.T) {
	viper.Reset()
	t.Setenv(KeyGeminiAPIKey, "secret")

	cfg, err := Gemini()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Empty(t, cfg.Model) // client falls back to its default
}
