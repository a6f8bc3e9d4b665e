package notion

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/shoreleave/shoreleave/pkg/errors"
)

// SchemaProperty describes one property of a database schema.
type SchemaProperty struct {
	Name string
	Kind string
}

// CheckAccess verifies that the integration token works by listing the
// workspace users, returning how many were visible.
func (c *Client) CheckAccess(ctx context.Context) (int, error) {
	resp, err := c.api.User.List(ctx, &notionapi.Pagination{})
	if err != nil {
		return 0, &errors.APIError{Service: "notion", Message: "listing users failed", Err: err}
	}
	return len(resp.Results), nil
}

// DescribeDatabase returns the property schema of a database: each property
// name with its typed-property kind (title, rich_text, select, multi_select,
// url, relation, ...).
func (c *Client) DescribeDatabase(ctx context.Context, databaseID string) ([]SchemaProperty, error) {
	db, err := c.api.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return nil, errors.NewStoreError("retrieve", databaseID, err)
	}

	props := make([]SchemaProperty, 0, len(db.Properties))
	for name, cfg := range db.Properties {
		props = append(props, SchemaProperty{
			Name: name,
			Kind: string(cfg.GetType()),
		})
	}
	return props, nil
}
