package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/config"
	"github.com/cajafuerte/arqueo/internal/db"
	"github.com/cajafuerte/arqueo/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "arqueo",
	Short: "Terminal client for the caja-fuerte cash-drawer backend",
	Long: `arqueo is a terminal client for the caja-fuerte cash-drawer service.
Open and close cash sessions (arqueos), stage income/expense movements and
submit them in one batch, reconcile counted bills against the system balance,
and browse filtered movement reports.`,
}

// initDB initializes the local store and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err)
	}
}

// newDeps wires the config, API client, and session tracker for a command.
func newDeps() (*config.Config, *api.Client, *session.Tracker) {
	cfg := config.Load()
	client := api.NewClient(cfg)
	return cfg, client, session.NewTracker(client)
}

// cmdContext returns the context used by one-shot command requests.
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// resolveTurno returns the --turno flag when given, or the configured
// default shift.
func resolveTurno(cmd *cobra.Command, cfg *config.Config) string {
	if turno, _ := cmd.Flags().GetString("turno"); turno != "" {
		return turno
	}
	return cfg.Turno
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arqueo %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(movementsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
