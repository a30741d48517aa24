package commands

import (
	"context"
	"fmt"

	"gameshelf/backend/internal/seed"
	"gameshelf/backend/internal/store"

	"github.com/spf13/cobra"
)

var seedFile string

// seedCmd loads a JSON dataset into the catalog
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a JSON dataset into the catalog",
	Long: `Import games from a dataset file. Developers, genres, platforms, and
tags referenced by name are created as needed. The whole file loads in one
transaction: a bad record rolls back everything.

Examples:
  shelfctl seed
  shelfctl seed --file data/games.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "data/games.json", "Dataset file to import")
}

func runSeed(ctx context.Context) error {
	records, err := seed.Load(seedFile)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	count, err := seed.Apply(ctx, store.New(db), records)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d games from %s\n", count, seedFile)
	return nil
}
