package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/shoreleave/shoreleave/pkg/catalog"
	"github.com/shoreleave/shoreleave/pkg/errors"
)

// CatalogStore adapts the destination catalog database to the
// reconcile.Store interface.
type CatalogStore struct {
	client *Client
}

// CatalogStore returns the reconciliation store backed by the configured
// destination catalog database.
func (c *Client) CatalogStore() (*CatalogStore, error) {
	if c.cfg.CatalogDatabaseID == "" {
		return nil, errors.NewConfigError("notion", "NOTION_CATALOG_DATABASE_ID not set", nil)
	}
	return &CatalogStore{client: c}, nil
}

// List returns every entry in the destination catalog, following the query
// cursor until the store reports no more pages.
func (s *CatalogStore) List(ctx context.Context) ([]catalog.Entry, error) {
	pages, err := s.client.queryAll(ctx, s.client.cfg.CatalogDatabaseID)
	if err != nil {
		return nil, errors.NewStoreError("query", s.client.cfg.CatalogDatabaseID, err)
	}

	entries := make([]catalog.Entry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, entryFromPage(page))
	}
	return entries, nil
}

// Create allocates a new catalog entry with all of the candidate's fields,
// including its name, and returns the page id issued by the store.
func (s *CatalogStore) Create(ctx context.Context, c catalog.Candidate) (string, error) {
	page, err := s.client.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(s.client.cfg.CatalogDatabaseID),
		},
		Properties: candidateProperties(c, true),
	})
	if err != nil {
		return "", err
	}
	return string(page.ID), nil
}

// Update overwrites the descriptive fields of an existing entry. The
// entry's name is left untouched.
func (s *CatalogStore) Update(ctx context.Context, id string, c catalog.Candidate) error {
	_, err := s.client.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: candidateProperties(c, false),
	})
	return err
}

// queryAll drains a database query, following the next cursor until the
// store reports has_more = false.
func (c *Client) queryAll(ctx context.Context, databaseID string) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
			PageSize:    queryPageSize,
		})
		if err != nil {
			return nil, err
		}

		pages = append(pages, resp.Results...)

		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}
