// Package comments provides database operations for book comments.
package comments

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withBook() *gorm.DB {
	return r.db.Preload("Book").Preload("Book.Author").Preload("Book.Genre")
}

// Count returns the number of stored comments.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Comment{}).Count(&count).Error
	return count, err
}

// Create inserts a comment for an already stored book.
func (r *Repository) Create(comment *entities.Comment) error {
	if comment.Book.ID != 0 {
		comment.BookID = comment.Book.ID
	}
	return r.db.Omit(clause.Associations).Create(comment).Error
}

// Update stores the comment's content and the book it belongs to.
func (r *Repository) Update(comment *entities.Comment) error {
	if comment.Book.ID != 0 {
		comment.BookID = comment.Book.ID
	}
	return r.db.Model(comment).Omit(clause.Associations).Updates(map[string]any{
		"content": comment.Content,
		"book_id": comment.BookID,
	}).Error
}

// GetByID retrieves a comment by ID.
func (r *Repository) GetByID(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.withBook().First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByContent retrieves the first comment with exactly the given content.
func (r *Repository) GetByContent(content string) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.withBook().Where("content = ?", content).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByBook retrieves all comments of a book.
func (r *Repository) GetByBook(bookID uint) ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.withBook().Where("book_id = ?", bookID).Order("id ASC").Find(&comments).Error
	return comments, err
}

// GetAll retrieves all comments ordered by ID.
func (r *Repository) GetAll() ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.withBook().Order("id ASC").Find(&comments).Error
	return comments, err
}

// DeleteByID removes a comment.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&entities.Comment{}, id).Error
}
