// Package books provides database operations for books.
//
// Every read joins the book's author and genre into the same statement, so a
// returned Book is always fully populated.
//
// # Usage
//
//	repo := books.NewRepository(tx)
//	book, err := repo.GetByTitle("Ulysses")
package books

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withAssociations() *gorm.DB {
	return r.db.Joins("Author").Joins("Genre")
}

// Count returns the number of stored books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// Create inserts a book referencing an already stored author and genre.
func (r *Repository) Create(book *entities.Book) error {
	linkAssociations(book)
	return r.db.Omit(clause.Associations).Create(book).Error
}

// Update stores the book's title, author and genre.
func (r *Repository) Update(book *entities.Book) error {
	linkAssociations(book)
	return r.db.Model(book).Omit(clause.Associations).Updates(map[string]any{
		"title":     book.Title,
		"author_id": book.AuthorID,
		"genre_id":  book.GenreID,
	}).Error
}

func linkAssociations(book *entities.Book) {
	if book.Author.ID != 0 {
		book.AuthorID = book.Author.ID
	}
	if book.Genre.ID != 0 {
		book.GenreID = book.Genre.ID
	}
}

// GetByID retrieves a book by ID.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.withAssociations().First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByTitle retrieves the first book with the given title.
func (r *Repository) GetByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.withAssociations().Where("books.title = ?", title).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByAuthor retrieves all books written by the named author.
func (r *Repository) GetByAuthor(author string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAssociations().
		Where(clause.Eq{Column: clause.Column{Table: "Author", Name: "name"}, Value: author}).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

// GetByGenre retrieves all books of the named genre.
func (r *Repository) GetByGenre(genre string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAssociations().
		Where(clause.Eq{Column: clause.Column{Table: "Genre", Name: "name"}, Value: genre}).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

// GetByComment retrieves the book a comment with the given content belongs to.
func (r *Repository) GetByComment(content string) (*entities.Book, error) {
	var book entities.Book
	err := r.withAssociations().
		Joins("JOIN comments ON comments.book_id = books.id").
		Where("comments.content = ?", content).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves all books ordered by ID.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAssociations().Order("books.id ASC").Find(&books).Error
	return books, err
}

// DeleteByID removes a book and its comments.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}
