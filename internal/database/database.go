package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/logging"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured store and migrates the catalog schema.
func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(entities.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if cfg.Seed {
		if err := database.Seed(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	log.Info().Str("driver", string(cfg.Driver)).Msg("database initialized")

	return database, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("database path is not set")
		}
		return sqlite.Open(withForeignKeys(cfg.Path)), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("database DSN is required for the %s driver", cfg.Driver)
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// withForeignKeys makes every pooled sqlite connection enforce foreign keys,
// which sqlite leaves off by default.
func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts the demo catalog when the store holds no books yet.
func (d *Database) Seed(ctx context.Context) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var books int64
		if err := tx.Model(&entities.Book{}).Count(&books).Error; err != nil {
			return err
		}
		if books > 0 {
			return nil
		}

		seed := demo.Seed

		author := entities.Author{Name: seed.Author}
		if err := tx.Where("name = ?", author.Name).FirstOrCreate(&author).Error; err != nil {
			return fmt.Errorf("failed to create author %s: %w", author.Name, err)
		}
		genre := entities.Genre{Name: seed.Genre}
		if err := tx.Where("name = ?", genre.Name).FirstOrCreate(&genre).Error; err != nil {
			return fmt.Errorf("failed to create genre %s: %w", genre.Name, err)
		}
		book := entities.Book{Title: seed.Title, AuthorID: author.ID, GenreID: genre.ID}
		if err := tx.Omit(clause.Associations).Create(&book).Error; err != nil {
			return fmt.Errorf("failed to create book %s: %w", book.Title, err)
		}
		for _, content := range seed.Comments {
			comment := entities.Comment{Content: content, BookID: book.ID}
			if err := tx.Omit(clause.Associations).Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}

		log.Info().Str("title", book.Title).Msg("seeded demo catalog")
		return nil
	})
}
