// Package discover implements the discover subcommand.
package discover

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoreleave/shoreleave/internal/config"
	"github.com/shoreleave/shoreleave/internal/discover"
	"github.com/shoreleave/shoreleave/internal/gemini"
	"github.com/shoreleave/shoreleave/internal/notion"
	"github.com/shoreleave/shoreleave/internal/report"
	"github.com/shoreleave/shoreleave/pkg/logging"
	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

// NewCommand creates the discover command.
func NewCommand() *cobra.Command {
	var (
		count      int
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "discover <destination>",
		Short: "Populate the destination catalog from a web-grounded model query",
		Long: `Discover asks the model for excursion candidates at a destination using
web grounding, then reconciles them against the destination catalog
database: exact name matches are skipped, entries the model judges to be
the same excursion are updated in place, and everything else is created
as a new entry.`,
		Example: `  shoreleave discover Cozumel
  shoreleave discover "St. Thomas" --count 5 --report run.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := strings.Join(args, " ")
			ctx := logging.WithOperation(cmd.Context(), "discover")
			ctx = logging.WithDestination(ctx, destination)

			notionCfg, err := config.Notion()
			if err != nil {
				return err
			}
			workspace, err := notion.New(notionCfg)
			if err != nil {
				return err
			}
			store, err := workspace.CatalogStore()
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

			candidates, err := discover.New(llm).Candidates(ctx, destination, count)
			if err != nil {
				return err
			}

			outcomes, err := reconcile.New(store, llm.Oracle()).Reconcile(ctx, candidates)
			if err != nil {
				return err
			}

			summary := reconcile.Summarize(outcomes)
			cmd.Printf("Reconciled %d candidates: %d created, %d updated, %d skipped, %d failed\n",
				summary.Total(), summary.Created, summary.Updated, summary.Skipped, summary.Failed)

			if reportPath != "" {
				run := report.NewRun(destination, llm.Model(), outcomes)
				if err := run.Write(reportPath); err != nil {
					return err
				}
				cmd.Printf("Report written to %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", discover.DefaultCount, "how many candidates to request")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML run report to this path")

	return cmd
}
