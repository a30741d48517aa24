package commands

import (
	"fmt"
	"os"

	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shelfctl",
	Short: "GameShelf catalog administration",
	Long: `shelfctl manages a GameShelf catalog database: schema migration,
seeding from a JSON dataset, and integrity verification.

Connection settings come from the same .env / environment variables the
API server reads (DATABASE_DRIVER, DATABASE_URL).`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.LoadConfig)
}

// openDB connects to the configured database, migrating on open.
func openDB() (*gorm.DB, error) {
	return database.Connect(config.AppConfig.DatabaseDriver, config.AppConfig.DatabaseURL)
}
