// Package enrich implements the enrich subcommand.
package enrich

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shoreleave/shoreleave/internal/config"
	"github.com/shoreleave/shoreleave/internal/enrich"
	"github.com/shoreleave/shoreleave/internal/gemini"
	"github.com/shoreleave/shoreleave/internal/notion"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

// NewCommand creates the enrich command.
func NewCommand() *cobra.Command {
	var pageID string

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Generate AI summaries, recommendations, and insights for excursion pages",
		Long: `Enrich reads the excursion planning database, generates a summary, a
comparative recommendation against the other excursions at the same
location, and travel-party insights for every page with a description,
and writes the results back onto the page's AI properties.

Pages without a description are skipped.`,
		Example: `  shoreleave enrich
  shoreleave enrich --page-id 1a2b3c4d-0000-0000-0000-000000000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithOperation(cmd.Context(), "enrich")
			if pageID != "" {
				ctx = logging.WithPage(ctx, pageID)
			}

			notionCfg, err := config.Notion()
			if err != nil {
				return err
			}
			if notionCfg.ExcursionsDatabaseID == "" {
				return fmt.Errorf("environment variable %s not set", config.KeyExcursionsDatabase)
			}
			store, err := notion.New(notionCfg)
			if err != nil {
				return err
			}

			geminiCfg, err := config.Gemini()
			if err != nil {
				return err
			}
			llm, err := gemini.New(ctx, geminiCfg)
			if err != nil {
				return err
			}

			report, err := enrich.New(store, llm).Run(ctx, pageID)
			if err != nil {
				return err
			}

			cmd.Printf("Updated %d of %d excursions (%d skipped, %d failed)\n",
				report.Updated, report.Total, report.Skipped, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&pageID, "page-id", "", "enrich a single page instead of the whole database")

	return cmd
}
