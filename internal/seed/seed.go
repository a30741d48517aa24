package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gameshelf/backend/internal/store"
)

// DateLayout is the release-date format used by dataset files.
const DateLayout = "2006-01-02"

// Record is one game entry in a dataset file. Related rows are referenced
// by name and created on demand during import.
type Record struct {
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	Description string   `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Developer   string   `json:"developer"`
	Country     string   `json:"country"`
	Genre       string   `json:"genre"`
	Platforms   []string `json:"platforms,omitempty"`
	Tags        struct {
		Genre      []string `json:"genre,omitempty"`
		Preference []string `json:"preference,omitempty"`
	} `json:"tags"`
}

// Load reads a dataset file and converts its records to import payloads.
func Load(path string) ([]store.GameImport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	imports := make([]store.GameImport, 0, len(records))
	for i, record := range records {
		releaseDate, err := time.Parse(DateLayout, record.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): bad release_date %q: %w", i, record.Title, record.ReleaseDate, err)
		}
		imports = append(imports, store.GameImport{
			Title:          record.Title,
			ReleaseDate:    releaseDate,
			Description:    record.Description,
			Rating:         record.Rating,
			Price:          record.Price,
			ImageURL:       record.ImageURL,
			Developer:      record.Developer,
			Country:        record.Country,
			Genre:          record.Genre,
			Platforms:      record.Platforms,
			GenreTags:      record.Tags.Genre,
			PreferenceTags: record.Tags.Preference,
		})
	}
	return imports, nil
}

// Apply imports every record in one transaction and reports how many games
// landed. It is meant for fresh databases; re-running it on seeded data
// duplicates games.
func Apply(ctx context.Context, st *store.Store, records []store.GameImport) (int, error) {
	return st.SeedCatalog(ctx, records)
}
