package notion

import (
	"context"
	"strings"

	"github.com/shoreleave/shoreleave/pkg/errors"
)

// PageRef identifies a page by id and title.
type PageRef struct {
	ID   string
	Name string
}

// FindPagesByName returns the pages in the given database whose title
// contains the search term, case-insensitively. Matching is done client
// side over the full page list, the same way titles are resolved.
func (c *Client) FindPagesByName(ctx context.Context, databaseID, term string) ([]PageRef, error) {
	pages, err := c.queryAll(ctx, databaseID)
	if err != nil {
		return nil, errors.NewStoreError("query", databaseID, err)
	}

	term = strings.ToLower(term)
	var matches []PageRef
	for _, page := range pages {
		name := titleOf(page)
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, PageRef{ID: string(page.ID), Name: name})
		}
	}
	return matches, nil
}

// ExcursionsDatabaseID returns the configured excursion database id.
func (c *Client) ExcursionsDatabaseID() string {
	return c.cfg.ExcursionsDatabaseID
}

// PeopleDatabaseID returns the configured people database id.
func (c *Client) PeopleDatabaseID() string {
	return c.cfg.PeopleDatabaseID
}

// CatalogDatabaseID returns the configured destination catalog database id.
func (c *Client) CatalogDatabaseID() string {
	return c.cfg.CatalogDatabaseID
}
