// Package config resolves shoreleave's runtime configuration from the
// environment and Viper-bound sources.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/shoreleave/shoreleave/internal/gemini"
	"github.com/shoreleave/shoreleave/internal/notion"
	"github.com/shoreleave/shoreleave/pkg/errors"
)

// Environment keys. The .env file loaded at startup feeds these.
const (
	KeyNotionAPIKey       = "NOTION_API_KEY"
	KeyExcursionsDatabase = "NOTION_DATABASE_ID"
	KeyCatalogDatabase    = "NOTION_CATALOG_DATABASE_ID"
	KeyPeopleDatabase     = "NOTION_PEOPLE_DATABASE_ID"
	KeyGeminiAPIKey       = "GEMINI_API_KEY"
	KeyGeminiModel        = "GEMINI_MODEL"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Require returns the value for key or a ConfigError when it is unset.
func Require(key string) (string, error) {
	value := GetString(key)
	if value == "" {
		return "", errors.NewConfigError(key, "environment variable not set", errors.ErrAPIKeyRequired)
	}
	return value, nil
}

// Notion assembles the document-store configuration. The API key and the
// excursions database are required; the catalog and people databases are
// optional and gate the features that need them.
func Notion() (notion.Config, error) {
	apiKey, err := Require(KeyNotionAPIKey)
	if err != nil {
		return notion.Config{}, err
	}

	return notion.Config{
		APIKey:               apiKey,
		ExcursionsDatabaseID: GetString(KeyExcursionsDatabase),
		CatalogDatabaseID:    GetString(KeyCatalogDatabase),
		PeopleDatabaseID:     GetString(KeyPeopleDatabase),
	}, nil
}

// Gemini assembles the model configuration.
func Gemini() (gemini.Config, error) {
	apiKey, err := Require(KeyGeminiAPIKey)
	if err != nil {
		return gemini.Config{}, err
	}

	return gemini.Config{
		APIKey: apiKey,
		Model:  GetString(KeyGeminiModel),
	}, nil
}
