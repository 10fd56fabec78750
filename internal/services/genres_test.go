package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func TestGenreService_SaveAndGetByName(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	genre, err := svc.Genres.Save(ctx, "Philosophy")
	require.NoError(t, err)
	assert.Positive(t, genre.ID)

	found, err := svc.Genres.GetByName(ctx, "Philosophy")
	require.NoError(t, err)
	assert.Equal(t, genre.ID, found.ID)

	_, err = svc.Genres.GetByName(ctx, "Poetry")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenreService_Update(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	genre, err := svc.Genres.Update(ctx, 1, "Modern novel")
	require.NoError(t, err)
	assert.Equal(t, "Modern novel", genre.Name)

	found, err := svc.Genres.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Modern novel", found.Name)
}

func TestGenreService_DeleteByID_RemovesBooks(t *testing.T) {
	svc, db := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.Books.Save(ctx, "Orlando", "Virginia Woolf", "Modernist novel")
	require.NoError(t, err)

	deleted, err := svc.Genres.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Modernist novel", deleted.Name)

	assert.Zero(t, count(t, db, &entities.Book{}))
	assert.Zero(t, count(t, db, &entities.Comment{}))
	// authors are shared and survive
	assert.Equal(t, int64(2), count(t, db, &entities.Author{}))
}
