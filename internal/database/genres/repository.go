// Package genres provides database operations for genres.
package genres

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of stored genres.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Genre{}).Count(&count).Error
	return count, err
}

// Create inserts a new genre and fills in its ID.
func (r *Repository) Create(genre *entities.Genre) error {
	return r.db.Create(genre).Error
}

// GetByID retrieves an genre by ID.
func (r *Repository) GetByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, id).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetByName retrieves an genre by exact name.
func (r *Repository) GetByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Where("name = ?", name).First(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetOrCreate returns the genre with the given name, creating it if missing.
func (r *Repository) GetOrCreate(name string) (*entities.Genre, error) {
	genre, err := r.GetByName(name)
	switch {
	case err == gorm.ErrRecordNotFound:
		genre = &entities.Genre{Name: name}
		return genre, r.Create(genre)
	case err != nil:
		return nil, err
	}
	return genre, nil
}

// GetAll retrieves all genres ordered by ID.
func (r *Repository) GetAll() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("id ASC").Find(&genres).Error
	return genres, err
}

// Update renames an genre.
func (r *Repository) Update(genre *entities.Genre) error {
	return r.db.Model(genre).Update("name", genre.Name).Error
}

// DeleteByID removes an genre together with its books and their comments.
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		books := tx.Model(&entities.Book{}).Select("id").Where("genre_id = ?", id)
		if err := tx.Where("book_id IN (?)", books).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("genre_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Genre{}, id).Error
	})
}
