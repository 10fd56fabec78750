// Package authors provides database operations for authors.
//
// # Usage
//
//	repo := authors.NewRepository(tx)
//	author, err := repo.GetByName("James Joyce")
package authors

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of stored authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}

// Create inserts a new author and fills in its ID.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByName retrieves an author by exact name.
func (r *Repository) GetByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetOrCreate returns the author with the given name, creating it if missing.
func (r *Repository) GetOrCreate(name string) (*entities.Author, error) {
	author, err := r.GetByName(name)
	if err == gorm.ErrRecordNotFound {
		author = &entities.Author{Name: name}
		if err := r.Create(author); err != nil {
			return nil, err
		}
		return author, nil
	}
	if err != nil {
		return nil, err
	}
	return author, nil
}

// GetAll retrieves all authors ordered by ID.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("id ASC").Find(&authors).Error
	return authors, err
}

// Update renames an author.
func (r *Repository) Update(author *entities.Author) error {
	return r.db.Model(author).Update("name", author.Name).Error
}

// DeleteByID removes an author together with its books and their comments.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		books := tx.Model(&entities.Book{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("book_id IN (?)", books).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Author{}, id).Error
	})
}
