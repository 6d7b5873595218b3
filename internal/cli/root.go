// Package cli implements zencrowctl, the operator tool for the website's
// database.
package cli

import (
	"fmt"

	"ZencrowWebsite/database"
	"ZencrowWebsite/pkg/log"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	databaseURL string
	logger      *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zencrowctl",
	Short: "Manage the Zencrow website database",
	Long: `zencrowctl applies schema migrations and seeds blog posts for the
Zencrow website. It reads DATABASE_URL from the environment or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		_ = godotenv.Load()
		if logger == nil {
			logger = log.NewLogger()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database url, overrides DATABASE_URL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func openDatabase() (*sqlx.DB, error) {
	cfg := database.LoadConfig()
	if databaseURL != "" {
		cfg.URL = databaseURL
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
