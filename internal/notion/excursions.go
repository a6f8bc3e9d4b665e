package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/errors"
)

// unknownLocation is used when a page's location relation cannot be resolved.
const unknownLocation = "Unknown Location"

// ListExcursions returns every excursion page in the planning database with
// its location relation resolved.
func (c *Client) ListExcursions(ctx context.Context) ([]catalog.Excursion, error) {
	pages, err := c.queryAll(ctx, c.cfg.ExcursionsDatabaseID)
	if err != nil {
		return nil, errors.NewStoreError("query", c.cfg.ExcursionsDatabaseID, err)
	}

	excursions := make([]catalog.Excursion, 0, len(pages))
	for _, page := range pages {
		excursions = append(excursions, c.excursionFromPage(ctx, page))
	}
	return excursions, nil
}

// GetExcursion fetches a single excursion page by id.
func (c *Client) GetExcursion(ctx context.Context, pageID string) (catalog.Excursion, error) {
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return catalog.Excursion{}, errors.NewStoreError("retrieve", pageID, err)
	}
	return c.excursionFromPage(ctx, *page), nil
}

// UpdateEnrichment writes the generated summary, recommendation, and
// insights back onto an excursion page.
func (c *Client) UpdateEnrichment(ctx context.Context, pageID, summary, recommendation, insights string) error {
	_, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: enrichmentProperties(summary, recommendation, insights),
	})
	if err != nil {
		return errors.NewStoreError("update", pageID, err)
	}
	return nil
}

// excursionFromPage maps an excursion page onto the domain type, resolving
// the first location relation to the related page's title. Resolution
// failures degrade to an unknown location rather than failing the page.
func (c *Client) excursionFromPage(ctx context.Context, page notionapi.Page) catalog.Excursion {
	excursion := catalog.Excursion{
		ID:          string(page.ID),
		Name:        titleOf(page),
		Description: richTextOf(page, propDescription),
	}

	if ids := relationIDsOf(page, propCruiseDetails); len(ids) > 0 {
		excursion.Location = c.relatedPageTitle(ctx, ids[0])
	}

	return excursion
}

// relatedPageTitle fetches the title of a related page.
func (c *Client) relatedPageTitle(ctx context.Context, pageID string) string {
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		c.log(ctx).Error().Err(err).Str("page_id", pageID).Msg("Failed to fetch related page")
		return unknownLocation
	}

	if title := titleOf(*page); title != "" {
		return title
	}
	return unknownLocation
}
