package entrypoint

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/shell"
)

// App is an opened catalog with its shell.
type App struct {
	db    *database.Database
	Shell *shell.Shell
}

// Open connects to the configured store and wires services into a shell that
// reads from in and writes to out.
func Open(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := services.New(db.DB)
	sh := shell.NewShell(shell.Services{
		Authors:  svc.Authors,
		Genres:   svc.Genres,
		Books:    svc.Books,
		Comments: svc.Comments,
	}, cfg.Shell.Prompt, in, out)

	return &App{db: db, Shell: sh}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func closeLogged(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database")
	}
}

// Run starts the interactive shell and blocks until the user leaves it or an
// interrupt arrives.
func Run(ctx context.Context, cfg *config.Config, version string, in io.Reader, out io.Writer) error {
	log.Info().Str("version", version).Msg("starting bookshelf")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := Open(cfg, in, out)
	if err != nil {
		return err
	}
	defer closeLogged(app)

	if err := app.Shell.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	log.Info().Msg("bookshelf exiting")
	return nil
}

// Exec runs a single command and writes its output to out.
func Exec(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	app, err := Open(cfg, os.Stdin, out)
	if err != nil {
		return err
	}
	defer closeLogged(app)

	output, err := app.Shell.Execute(ctx, args)
	if output != "" {
		fmt.Fprintln(out, output)
	}
	return err
}
