package notion

import (
	"context"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/errors"
)

// ListPersonas reads the travel party from the people database. Returns an
// empty list when no people database is configured, so persona insights
// simply degrade to generic ones.
func (c *Client) ListPersonas(ctx context.Context) ([]catalog.Persona, error) {
	if c.cfg.PeopleDatabaseID == "" {
		return nil, nil
	}

	pages, err := c.queryAll(ctx, c.cfg.PeopleDatabaseID)
	if err != nil {
		return nil, errors.NewStoreError("query", c.cfg.PeopleDatabaseID, err)
	}

	personas := make([]catalog.Persona, 0, len(pages))
	for _, page := range pages {
		personas = append(personas, catalog.Persona{
			Name:      titleOf(page),
			Interests: multiSelectOf(page, propInterests),
			Notes:     richTextOf(page, propNotes),
		})
	}
	return personas, nil
}
