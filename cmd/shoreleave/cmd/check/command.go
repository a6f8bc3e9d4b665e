// Package check implements the check subcommand.
package check

import (
	"context"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shoreleave/shoreleave/internal/config"
	"github.com/shoreleave/shoreleave/internal/gemini"
	"github.com/shoreleave/shoreleave/internal/notion"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// NewCommand creates the check command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify workspace access and describe database schemas",
		Long: `Check verifies that the Notion integration token works and prints the
property schema of each configured database, so property-name mismatches
surface before an enrich or discover run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithOperation(cmd.Context(), "check")

			notionCfg, err := config.Notion()
			if err != nil {
				return err
			}
			client, err := notion.New(notionCfg)
			if err != nil {
				return err
			}

			users, err := client.CheckAccess(ctx)
			if err != nil {
				return err
			}
			cmd.Printf("Token OK: %d workspace users visible\n", users)

			databases := []struct {
				label string
				id    string
			}{
				{"excursions", notionCfg.ExcursionsDatabaseID},
				{"catalog", notionCfg.CatalogDatabaseID},
				{"people", notionCfg.PeopleDatabaseID},
			}

			for _, db := range databases {
				if db.id == "" {
					cmd.Printf("\n%s database: not configured\n", db.label)
					continue
				}
				if err := describe(ctx, cmd, client, db.label, db.id); err != nil {
					return err
				}
			}

			return checkGemini(ctx, cmd)
		},
	}

	return cmd
}

// checkGemini runs a one-token completion to prove the model is reachable.
func checkGemini(ctx context.Context, cmd *cobra.Command) error {
	geminiCfg, err := config.Gemini()
	if err != nil {
		cmd.Println("\nGemini: not configured")
		return nil
	}
	llm, err := gemini.New(ctx, geminiCfg)
	if err != nil {
		return err
	}

	if _, err := llm.Complete(ctx, "", "Reply with OK.", 8, 0); err != nil {
		return err
	}
	cmd.Printf("\nGemini OK: model %s reachable\n", llm.Model())
	return nil
}

func describe(ctx context.Context, cmd *cobra.Command, client *notion.Client, label, id string) error {
	props, err := client.DescribeDatabase(ctx, id)
	if err != nil {
		return err
	}

	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })

	cmd.Printf("\n%s database (%s):\n", label, id)
	for _, prop := range props {
		cmd.Printf("  %-30s %s\n", prop.Name, prop.Kind)
	}
	return nil
}
