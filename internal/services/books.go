package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database/authors"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/genres"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookService manages books. Authors and genres are referenced by name and
// created on first use.
type BookService struct {
	db *gorm.DB
}

// NewBookService creates a new BookService.
func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// resolve looks up the named author and genre, creating whichever is missing.
func resolve(tx *gorm.DB, authorName, genreName string) (*entities.Author, *entities.Genre, error) {
	author, err := authors.NewRepository(tx).GetOrCreate(authorName)
	if err != nil {
		return nil, nil, err
	}
	genre, err := genres.NewRepository(tx).GetOrCreate(genreName)
	if err != nil {
		return nil, nil, err
	}
	return author, genre, nil
}

// Save stores a new book by the named author in the named genre.
func (s *BookService) Save(ctx context.Context, title, authorName, genreName string) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		author, genre, err := resolve(tx, authorName, genreName)
		if err != nil {
			return err
		}

		book = &entities.Book{Title: title, Author: *author, Genre: *genre}
		return books.NewRepository(tx).Create(book)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", book.ID).Str("title", title).Str("author", authorName).Msg("book created")
	return book, nil
}

func (s *BookService) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		book, err = books.NewRepository(tx).GetByID(id)
		return lookup(err, notFoundByID("book", id))
	})
	return book, err
}

func (s *BookService) GetByTitle(ctx context.Context, title string) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		book, err = books.NewRepository(tx).GetByTitle(title)
		return lookup(err, notFoundBy("book", "title", title))
	})
	return book, err
}

// GetByAuthor returns every book of the named author, failing with
// ErrNotFound when there are none.
func (s *BookService) GetByAuthor(ctx context.Context, author string) ([]entities.Book, error) {
	var found []entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		found, err = books.NewRepository(tx).GetByAuthor(author)
		if err == nil && len(found) == 0 {
			return notFoundBy("book", "author", author)
		}
		return err
	})
	return found, err
}

// GetByGenre returns every book of the named genre, failing with ErrNotFound
// when there are none.
func (s *BookService) GetByGenre(ctx context.Context, genre string) ([]entities.Book, error) {
	var found []entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		found, err = books.NewRepository(tx).GetByGenre(genre)
		if err == nil && len(found) == 0 {
			return notFoundBy("book", "genre", genre)
		}
		return err
	})
	return found, err
}

func (s *BookService) GetByComment(ctx context.Context, content string) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		book, err = books.NewRepository(tx).GetByComment(content)
		return lookup(err, notFoundBy("book", "comment", content))
	})
	return book, err
}

func (s *BookService) GetAll(ctx context.Context) ([]entities.Book, error) {
	var all []entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		all, err = books.NewRepository(tx).GetAll()
		return err
	})
	return all, err
}

// Update replaces title, author and genre of an existing book.
func (s *BookService) Update(ctx context.Context, id uint, title, authorName, genreName string) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)

		var err error
		book, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("book", id))
		}

		author, genre, err := resolve(tx, authorName, genreName)
		if err != nil {
			return err
		}

		book.Title = title
		book.Author = *author
		book.Genre = *genre
		return repo.Update(book)
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteByID removes a book with its comments and returns the removed book.
func (s *BookService) DeleteByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book *entities.Book
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)

		var err error
		book, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("book", id))
		}
		return repo.DeleteByID(id)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", id).Str("title", book.Title).Msg("book deleted")
	return book, nil
}

func (s *BookService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		count, err = books.NewRepository(tx).Count()
		return err
	})
	return count, err
}
