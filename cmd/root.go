package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"briefly/internal/app"
	"briefly/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "briefly",
	Short: "Meeting summaries and study notes from the command line",
	Long: `briefly sends meeting notes or lecture text to a summarization service
and prints the summary, study notes or quiz it returns.

Run 'briefly serve' to start the service itself.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	// PersistentPreRunE loads configuration and builds the app for every subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "subjects" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if serverURL != "" {
			cfg.Client.BaseURL = serverURL
		}
		configureLogging(cfg.Log.Level)

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			printError(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func configureLogging(level string) {
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Summarization service base URL (overrides client.base_url)")

	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the summarization service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checking %s ...\n", appInstance.Client.BaseURL())

		if err := appInstance.Client.Health(cmd.Context()); err != nil {
			return fmt.Errorf("service check failed: %w", err)
		}

		fmt.Fprintln(out, "Service is reachable.")
		return nil
	},
}
