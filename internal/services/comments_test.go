package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Save(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	comment, err := svc.Comments.Save(ctx, 1, "Second comment")
	require.NoError(t, err)
	assert.Positive(t, comment.ID)
	assert.Equal(t, "Ulysses", comment.Book.Title)

	found, err := svc.Comments.GetByContent(ctx, "Second comment")
	require.NoError(t, err)
	assert.Equal(t, comment.ID, found.ID)
	assert.Equal(t, "Comment 'Second comment' to book Ulysses", found.String())
}

func TestCommentService_Save_UnknownBook(t *testing.T) {
	svc, _ := setupTestServices(t)

	_, err := svc.Comments.Save(context.Background(), 77, "lost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "book with id 77")
}

func TestCommentService_GetByID(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	comment, err := svc.Comments.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Published in 1922", comment.Content)
	assert.Equal(t, "James Joyce", comment.Book.Author.Name)

	_, err = svc.Comments.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_GetByBook(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.Comments.Save(ctx, 1, "Good book")
	require.NoError(t, err)

	comments, err := svc.Comments.GetByBook(ctx, "Ulysses")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Published in 1922", comments[0].Content)
	assert.Equal(t, "Good book", comments[1].Content)

	_, err = svc.Comments.GetByBook(ctx, "Finnegans Wake")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_GetByBook_NoComments(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.Books.Save(ctx, "Orlando", "Virginia Woolf", "Modernist novel")
	require.NoError(t, err)

	comments, err := svc.Comments.GetByBook(ctx, "Orlando")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentService_Update(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	orlando, err := svc.Books.Save(ctx, "Orlando", "Virginia Woolf", "Modernist novel")
	require.NoError(t, err)

	updated, err := svc.Comments.Update(ctx, orlando.ID, 1, "Good book")
	require.NoError(t, err)
	assert.Equal(t, "Orlando", updated.Book.Title)

	found, err := svc.Comments.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Good book", found.Content)
	assert.Equal(t, orlando.ID, found.Book.ID)

	_, err = svc.Comments.Update(ctx, orlando.ID, 50, "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Comments.Update(ctx, 50, 1, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_DeleteByID(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	deleted, err := svc.Comments.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ulysses", deleted.Book.Title)

	all, err := svc.Comments.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// the book is untouched
	_, err = svc.Books.GetByID(ctx, 1)
	assert.NoError(t, err)

	_, err = svc.Comments.DeleteByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
