package cli

import (
	"fmt"

	"ZencrowWebsite/database"
	"github.com/spf13/cobra"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrateDown,
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := database.MigrateUp(db)
	if err != nil {
		return err
	}

	if applied {
		cmd.Println("Migrations applied.")
	} else {
		cmd.Println("Schema already up to date.")
	}
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	if migrateSteps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", migrateSteps)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.MigrateDown(db, migrateSteps); err != nil {
		return err
	}

	cmd.Printf("Rolled back %d migration(s).\n", migrateSteps)
	return nil
}
