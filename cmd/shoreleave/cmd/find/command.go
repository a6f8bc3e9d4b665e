// Package find implements the find subcommand.
package find

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoreleave/shoreleave/internal/config"
	"github.com/shoreleave/shoreleave/internal/notion"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// NewCommand creates the find command.
func NewCommand() *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:   "find <search term>",
		Short: "Find page ids by title",
		Long: `Find searches a database for pages whose title contains the search term
and prints their page ids, for use with flags like enrich --page-id.`,
		Example: `  shoreleave find snorkel
  shoreleave find --database people Maya`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")

			notionCfg, err := config.Notion()
			if err != nil {
				return err
			}
			client, err := notion.New(notionCfg)
			if err != nil {
				return err
			}

			databaseID, err := databaseID(client, database)
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(cmd.Context(), "find")
			matches, err := client.FindPagesByName(ctx, databaseID, term)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				cmd.Printf("No pages matching %q\n", term)
				return nil
			}

			for _, match := range matches {
				cmd.Printf("%s  %s\n", match.ID, match.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "excursions", "database to search: excursions, people, or catalog")

	return cmd
}

func databaseID(client *notion.Client, database string) (string, error) {
	var id, key string
	switch database {
	case "excursions":
		id, key = client.ExcursionsDatabaseID(), config.KeyExcursionsDatabase
	case "people":
		id, key = client.PeopleDatabaseID(), config.KeyPeopleDatabase
	case "catalog":
		id, key = client.CatalogDatabaseID(), config.KeyCatalogDatabase
	default:
		return "", fmt.Errorf("unknown database %q (want excursions, people, or catalog)", database)
	}
	if id == "" {
		return "", fmt.Errorf("environment variable %s not set", key)
	}
	return id, nil
}
