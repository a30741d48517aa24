package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gameshelf/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Connect opens the configured database and runs migrations.
func Connect(driver, dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// sqliteDSN appends the connection options the catalog relies on. Foreign-key
// enforcement is opt-in in SQLite and must be requested per connection; the
// busy timeout covers concurrent writers during seeding.
func sqliteDSN(path string) string {
	if path == "" {
		path = "gameshelf.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Migrate creates or updates the schema. The join tables are registered before
// AutoMigrate so game_platforms and game_tags are built from the composite-key
// models rather than GORM's implicit join tables. Safe to run repeatedly
// against an already-initialized store.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Game{}, "Platforms", &models.GamePlatform{}); err != nil {
		return fmt.Errorf("register game_platforms join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Game{}, "Tags", &models.GameTag{}); err != nil {
		return fmt.Errorf("register game_tags join table: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Developer{},
		&models.Genre{},
		&models.Platform{},
		&models.Tag{},
		&models.Game{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}
