// Package shell implements the interactive command interpreter for the
// catalog. Every input line is split into words, dispatched to a cobra
// command and answered with a single block of text.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type AuthorService interface {
	Save(ctx context.Context, name string) (*entities.Author, error)
	GetByID(ctx context.Context, id uint) (*entities.Author, error)
	GetByName(ctx context.Context, name string) (*entities.Author, error)
	GetAll(ctx context.Context) ([]entities.Author, error)
	Update(ctx context.Context, id uint, name string) (*entities.Author, error)
	DeleteByID(ctx context.Context, id uint) (*entities.Author, error)
	Count(ctx context.Context) (int64, error)
}

type GenreService interface {
	Save(ctx context.Context, name string) (*entities.Genre, error)
	GetByID(ctx context.Context, id uint) (*entities.Genre, error)
	GetByName(ctx context.Context, name string) (*entities.Genre, error)
	GetAll(ctx context.Context) ([]entities.Genre, error)
	Update(ctx context.Context, id uint, name string) (*entities.Genre, error)
	DeleteByID(ctx context.Context, id uint) (*entities.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type BookService interface {
	Save(ctx context.Context, title, author, genre string) (*entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	GetByTitle(ctx context.Context, title string) (*entities.Book, error)
	GetByAuthor(ctx context.Context, author string) ([]entities.Book, error)
	GetByGenre(ctx context.Context, genre string) ([]entities.Book, error)
	GetByComment(ctx context.Context, content string) (*entities.Book, error)
	GetAll(ctx context.Context) ([]entities.Book, error)
	Update(ctx context.Context, id uint, title, author, genre string) (*entities.Book, error)
	DeleteByID(ctx context.Context, id uint) (*entities.Book, error)
	Count(ctx context.Context) (int64, error)
}

type CommentService interface {
	Save(ctx context.Context, bookID uint, content string) (*entities.Comment, error)
	GetByID(ctx context.Context, id uint) (*entities.Comment, error)
	GetByContent(ctx context.Context, content string) (*entities.Comment, error)
	GetByBook(ctx context.Context, title string) ([]entities.Comment, error)
	GetAll(ctx context.Context) ([]entities.Comment, error)
	Update(ctx context.Context, bookID, commentID uint, content string) (*entities.Comment, error)
	DeleteByID(ctx context.Context, id uint) (*entities.Comment, error)
	Count(ctx context.Context) (int64, error)
}

// Services is everything the commands need from the catalog.
type Services struct {
	Authors  AuthorService
	Genres   GenreService
	Books    BookService
	Comments CommentService
}

// Shell reads commands from in and writes their results to out.
type Shell struct {
	services Services
	prompt   string
	in       io.Reader
	out      io.Writer
}

// NewShell creates a Shell bound to the given services.
func NewShell(services Services, prompt string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		services: services,
		prompt:   prompt,
		in:       in,
		out:      out,
	}
}

// Evaluate executes a single command line and returns its output without the
// trailing newline. An empty line yields no output.
func (s *Shell) Evaluate(ctx context.Context, line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}
	return s.Execute(ctx, args)
}

// Execute runs an already split command.
func (s *Shell) Execute(ctx context.Context, args []string) (string, error) {
	var buf bytes.Buffer

	root := NewRootCommand(s.services)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return strings.TrimRight(buf.String(), "\n"), err
}

// Run prompts for commands until the input ends, exit or quit is entered, or
// ctx is cancelled. Command failures are reported and do not stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := s.readLines(readCtx)

	for {
		fmt.Fprint(s.out, s.prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return <-readErr
			}
			line = strings.TrimSpace(next)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		output, err := s.Evaluate(ctx, line)
		if output != "" {
			fmt.Fprintln(s.out, output)
		}
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("command failed")
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// readLines scans s.in in the background so that Run can stop on ctx while a
// read is pending. The scan error is sent before lines is closed.
func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}
