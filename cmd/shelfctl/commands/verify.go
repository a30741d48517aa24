package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"gameshelf/backend/internal/models"

	"github.com/spf13/cobra"
)

// verifyCmd reports table counts and referential integrity
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check catalog integrity",
	Long: `Report per-table row counts and look for games referencing missing
developers or genres. A healthy catalog reports zero orphans.

Examples:
  shelfctl verify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify()
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify() error {
	db, err := openDB()
	if err != nil {
		return err
	}

	tables := []struct {
		name  string
		model any
	}{
		{"developers", &models.Developer{}},
		{"genres", &models.Genre{}},
		{"platforms", &models.Platform{}},
		{"tags", &models.Tag{}},
		{"games", &models.Game{}},
		{"game_platforms", &models.GamePlatform{}},
		{"game_tags", &models.GameTag{}},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, table := range tables {
		var count int64
		if err := db.Model(table.model).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", table.name, err)
		}
		fmt.Fprintf(w, "%s\t%d\n", table.name, count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	var missingDeveloper, missingGenre int64
	if err := db.Model(&models.Game{}).
		Joins("LEFT JOIN developers ON developers.id = games.developer_id").
		Where("developers.id IS NULL").
		Count(&missingDeveloper).Error; err != nil {
		return fmt.Errorf("check developer references: %w", err)
	}
	if err := db.Model(&models.Game{}).
		Joins("LEFT JOIN genres ON genres.id = games.genre_id").
		Where("genres.id IS NULL").
		Count(&missingGenre).Error; err != nil {
		return fmt.Errorf("check genre references: %w", err)
	}

	if missingDeveloper > 0 || missingGenre > 0 {
		return fmt.Errorf("integrity check failed: %d games with missing developers, %d with missing genres", missingDeveloper, missingGenre)
	}

	fmt.Println("No orphaned games found")
	return nil
}
