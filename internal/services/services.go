// Package services holds the catalog's business operations. Every exported
// method runs in exactly one database transaction and builds its repositories
// on that transaction.
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an identifier or natural key matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a natural key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Services bundles one service per catalog entity.
type Services struct {
	Authors  *AuthorService
	Genres   *GenreService
	Books    *BookService
	Comments *CommentService
}

// New creates all catalog services on top of db.
func New(db *gorm.DB) *Services {
	return &Services{
		Authors:  NewAuthorService(db),
		Genres:   NewGenreService(db),
		Books:    NewBookService(db),
		Comments: NewCommentService(db),
	}
}

func transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

func notFoundByID(entity string, id uint) error {
	return fmt.Errorf("%w: %s with id %d", ErrNotFound, entity, id)
}

func notFoundBy(entity, field, value string) error {
	return fmt.Errorf("%w: %s with %s %q", ErrNotFound, entity, field, value)
}

func alreadyExists(entity, name string) error {
	return fmt.Errorf("%w: %s %q", ErrAlreadyExists, entity, name)
}

// lookup replaces gorm.ErrRecordNotFound with notFound and passes any other
// error through.
func lookup(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
