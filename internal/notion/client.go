// Package notion is the gateway to the remote Notion workspace. It wraps the
// typed-property model of the Notion API behind the domain types in
// pkg/catalog: excursion pages in the planning database, entries in the
// destination catalog database, and personas in the people database.
package notion

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rs/zerolog"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// queryPageSize is the page size used for all database queries.
const queryPageSize = 100

// Config carries the connection settings for the workspace.
type Config struct {
	// APIKey is the Notion integration token.
	APIKey string

	// ExcursionsDatabaseID is the excursion planning database.
	ExcursionsDatabaseID string

	// CatalogDatabaseID is the destination catalog database populated by
	// discovery runs. Optional when only enrichment is used.
	CatalogDatabaseID string

	// PeopleDatabaseID is the travel-party database used for persona
	// insights. Optional.
	PeopleDatabaseID string
}

// Client wraps the Notion API for the databases shoreleave works with.
type Client struct {
	api    *notionapi.Client
	cfg    Config
	logger *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger overrides the logger used for gateway operations. Without it
// the client logs through the context logger (logging.Ctx).
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a workspace client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewConfigError("notion", "NOTION_API_KEY not set", errors.ErrAPIKeyRequired)
	}

	c := &Client{
		api: notionapi.NewClient(notionapi.Token(cfg.APIKey)),
		cfg: cfg,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) log(ctx context.Context) *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.Ctx(ctx)
}
