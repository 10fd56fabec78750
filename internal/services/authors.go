package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database/authors"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// AuthorService manages authors.
type AuthorService struct {
	db *gorm.DB
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db}
}

// Save stores a new author. Names are unique.
func (s *AuthorService) Save(ctx context.Context, name string) (*entities.Author, error) {
	author := &entities.Author{Name: name}
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		if _, err := repo.GetByName(name); err == nil {
			return alreadyExists("author", name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := repo.Create(author); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return alreadyExists("author", name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", author.ID).Str("name", author.Name).Msg("author created")
	return author, nil
}

func (s *AuthorService) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author *entities.Author
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		author, err = authors.NewRepository(tx).GetByID(id)
		return lookup(err, notFoundByID("author", id))
	})
	return author, err
}

func (s *AuthorService) GetByName(ctx context.Context, name string) (*entities.Author, error) {
	var author *entities.Author
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		author, err = authors.NewRepository(tx).GetByName(name)
		return lookup(err, notFoundBy("author", "name", name))
	})
	return author, err
}

func (s *AuthorService) GetAll(ctx context.Context) ([]entities.Author, error) {
	var all []entities.Author
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		all, err = authors.NewRepository(tx).GetAll()
		return err
	})
	return all, err
}

// Update renames the author with the given ID.
func (s *AuthorService) Update(ctx context.Context, id uint, name string) (*entities.Author, error) {
	var author *entities.Author
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		var err error
		author, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("author", id))
		}

		if existing, err := repo.GetByName(name); err == nil && existing.ID != id {
			return alreadyExists("author", name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		author.Name = name
		return repo.Update(author)
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// DeleteByID removes an author with all of its books and their comments and
// returns the removed author.
func (s *AuthorService) DeleteByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author *entities.Author
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := authors.NewRepository(tx)

		var err error
		author, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("author", id))
		}
		return repo.DeleteByID(id)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", id).Str("name", author.Name).Msg("author deleted")
	return author, nil
}

func (s *AuthorService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		count, err = authors.NewRepository(tx).Count()
		return err
	})
	return count, err
}
