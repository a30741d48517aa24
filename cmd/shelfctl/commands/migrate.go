package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create the catalog tables with their constraints and indexes.

Safe to run against an existing database; it only adds what is missing.

Examples:
  shelfctl migrate
  DATABASE_DRIVER=postgres DATABASE_URL=postgres://... shelfctl migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	if _, err := openDB(); err != nil {
		return err
	}
	fmt.Println("Schema is up to date")
	return nil
}
