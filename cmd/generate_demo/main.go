// Command generate_demo creates a demo catalog database filled with public
// domain books.
// Usage: go run ./cmd/generate_demo [--db path/to/demo.db]
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	var dbPath string

	cmd := &cobra.Command{
		Use:          "generate_demo",
		Short:        "Generate a demo catalog database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), dbPath)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", defaultDemoDatabasePath, "path to the demo database file")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func generate(ctx context.Context, dbPath string) error {
	logging.Init(config.Log{Level: "info"})
	log.Info().Str("path", dbPath).Msg("generating demo database")

	// start fresh
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing demo database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create demo directory: %w", err)
	}

	db, err := database.NewDatabase(config.Database{Driver: config.DriverSQLite, Path: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	svc := services.New(db.DB)
	for _, sample := range demo.Library() {
		book, err := svc.Books.Save(ctx, sample.Title, sample.Author, sample.Genre)
		if err != nil {
			log.Error().Err(err).Str("title", sample.Title).Msg("failed to save book")
			continue
		}
		for _, content := range sample.Comments {
			if _, err := svc.Comments.Save(ctx, book.ID, content); err != nil {
				log.Error().Err(err).Str("title", sample.Title).Msg("failed to save comment")
			}
		}
	}

	stats, err := svc.Books.Count(ctx)
	if err != nil {
		return err
	}
	log.Info().Int64("books", stats).Msg("demo database generated")
	return nil
}
