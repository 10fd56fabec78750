package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database/genres"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// GenreService manages genres.
type GenreService struct {
	db *gorm.DB
}

// NewGenreService creates a new GenreService.
func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{db: db}
}

// Save stores a new genre. Names are unique.
func (s *GenreService) Save(ctx context.Context, name string) (*entities.Genre, error) {
	genre := &entities.Genre{Name: name}
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := genres.NewRepository(tx)

		if _, err := repo.GetByName(name); err == nil {
			return alreadyExists("genre", name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := repo.Create(genre); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return alreadyExists("genre", name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", genre.ID).Str("name", genre.Name).Msg("genre created")
	return genre, nil
}

func (s *GenreService) GetByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre *entities.Genre
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		genre, err = genres.NewRepository(tx).GetByID(id)
		return lookup(err, notFoundByID("genre", id))
	})
	return genre, err
}

func (s *GenreService) GetByName(ctx context.Context, name string) (*entities.Genre, error) {
	var genre *entities.Genre
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		genre, err = genres.NewRepository(tx).GetByName(name)
		return lookup(err, notFoundBy("genre", "name", name))
	})
	return genre, err
}

func (s *GenreService) GetAll(ctx context.Context) ([]entities.Genre, error) {
	var all []entities.Genre
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		all, err = genres.NewRepository(tx).GetAll()
		return err
	})
	return all, err
}

// Update renames the genre with the given ID.
func (s *GenreService) Update(ctx context.Context, id uint, name string) (*entities.Genre, error) {
	var genre *entities.Genre
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := genres.NewRepository(tx)

		var err error
		genre, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("genre", id))
		}

		if existing, err := repo.GetByName(name); err == nil && existing.ID != id {
			return alreadyExists("genre", name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		genre.Name = name
		return repo.Update(genre)
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

// DeleteByID removes an genre with all of its books and their comments and
// returns the removed genre.
func (s *GenreService) DeleteByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre *entities.Genre
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := genres.NewRepository(tx)

		var err error
		genre, err = repo.GetByID(id)
		if err != nil {
			return lookup(err, notFoundByID("genre", id))
		}
		return repo.DeleteByID(id)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("id", id).Str("name", genre.Name).Msg("genre deleted")
	return genre, nil
}

func (s *GenreService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		count, err = genres.NewRepository(tx).Count()
		return err
	})
	return count, err
}
