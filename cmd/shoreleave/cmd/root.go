// Package cmd wires up the shoreleave command tree: configuration loading,
// logging setup, signal-aware context, and the subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shoreleave/shoreleave/cmd/shoreleave/cmd/check"
	"github.com/shoreleave/shoreleave/cmd/shoreleave/cmd/discover"
	"github.com/shoreleave/shoreleave/cmd/shoreleave/cmd/enrich"
	"github.com/shoreleave/shoreleave/cmd/shoreleave/cmd/find"
	"github.com/shoreleave/shoreleave/pkg/logging"
)

var (
	verbose bool
	quiet   bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shoreleave",
	Short: "AI enrichment for an excursion planning workspace",
	Long: `Shoreleave enriches a Notion excursion planning workspace with
AI-generated content: per-excursion summaries, comparative recommendations
among excursions at the same location, and insights tailored to the travel
party.

It can also populate a destination catalog database from a web-grounded
model query, deduplicating new entries against what the catalog already
holds.

Configuration comes from the environment (a .env file is loaded when
present): NOTION_API_KEY, NOTION_DATABASE_ID, NOTION_CATALOG_DATABASE_ID,
NOTION_PEOPLE_DATABASE_ID, GEMINI_API_KEY, GEMINI_MODEL.`,
}

// Execute adds all child commands to the root command and runs it with a
// signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}

	rootCmd.AddCommand(enrich.NewCommand())
	rootCmd.AddCommand(discover.NewCommand())
	rootCmd.AddCommand(find.NewCommand())
	rootCmd.AddCommand(check.NewCommand())
}

// initConfig loads .env files and binds environment variables.
func initConfig() {
	// godotenv never overrides variables that are already set, so loading
	// .env.local first lets it take precedence over .env.
	loadEnvFile(".env.local")
	loadEnvFile(".env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configureLogging()
}

// configureLogging sets up the logging system based on flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	config := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}
	if config.Format == "" {
		config.Format = "auto"
	}
	if config.Output == "" {
		config.Output = "stderr"
	}

	logging.Configure(config)
}

// loadEnvFile loads a single .env file using godotenv. Missing files are
// not an error.
func loadEnvFile(filename string) {
	if err := godotenv.Load(filename); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Loaded %s\n", filename)
	}
}
