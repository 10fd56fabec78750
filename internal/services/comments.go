package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/comments"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// CommentService manages comments. A comment always belongs to an existing
// book.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a new CommentService.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Save adds a comment to the book with the given ID.
func (s *CommentService) Save(ctx context.Context, bookID uint, content string) (*entities.Comment, error) {
	var comment *entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		book, err := books.NewRepository(tx).GetByID(bookID)
		if err != nil {
			return lookup(err, notFoundByID("book", bookID))
		}

		comment = &entities.Comment{Content: content, Book: *book}
		return comments.NewRepository(tx).Create(comment)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", comment.ID).Uint("book_id", bookID).Msg("comment created")
	return comment, nil
}

func (s *CommentService) GetByID(ctx context.Context, id uint) (*entities.Comment, error) {
	var comment *entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		comment, err = comments.NewRepository(tx).GetByID(id)
		return lookup(err, notFoundByID("comment", id))
	})
	return comment, err
}

func (s *CommentService) GetByContent(ctx context.Context, content string) (*entities.Comment, error) {
	var comment *entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		comment, err = comments.NewRepository(tx).GetByContent(content)
		return lookup(err, notFoundBy("comment", "content", content))
	})
	return comment, err
}

// GetByBook returns the comments of the book with the given title. A book
// without comments yields an empty slice.
func (s *CommentService) GetByBook(ctx context.Context, title string) ([]entities.Comment, error) {
	var found []entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		book, err := books.NewRepository(tx).GetByTitle(title)
		if err != nil {
			return lookup(err, notFoundBy("book", "title", title))
		}

		found, err = comments.NewRepository(tx).GetByBook(book.ID)
		return err
	})
	return found, err
}

func (s *CommentService) GetAll(ctx context.Context) ([]entities.Comment, error) {
	var all []entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		all, err = comments.NewRepository(tx).GetAll()
		return err
	})
	return all, err
}

// Update replaces the content of a comment and attaches it to the given book.
func (s *CommentService) Update(ctx context.Context, bookID, commentID uint, content string) (*entities.Comment, error) {
	var comment *entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		book, err := books.NewRepository(tx).GetByID(bookID)
		if err != nil {
			return lookup(err, notFoundByID("book", bookID))
		}

		repo := comments.NewRepository(tx)
		comment, err = repo.GetByID(commentID)
		if err != nil {
			return lookup(err, notFoundByID("comment", commentID))
		}

		comment.Content = content
		comment.Book = *book
		return repo.Update(comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteByID removes a comment and returns it together with its book.
func (s *CommentService) DeleteByID(ctx context.Context, id uint) (*entities.Comment, error) {
	var comment *entities.Comment
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := comments.NewRepository(tx)

		var err error
		comment, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("comment", id))
		}
		return repo.DeleteByID(id)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", id).Str("book", comment.Book.Title).Msg("comment deleted")
	return comment, nil
}

func (s *CommentService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		count, err = comments.NewRepository(tx).Count()
		return err
	})
	return count, err
}
