package books

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type fixture struct {
	db      *gorm.DB
	repo    *Repository
	joyce   *entities.Author
	novel   *entities.Genre
	ulysses *entities.Book
}

// setupTestDB stores the Ulysses fixture: one author, one genre, one book and
// one comment.
func setupTestDB(t *testing.T) *fixture {
	dbPath := filepath.Join(t.TempDir(), "books.db") + "?_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities.All()...))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	f := &fixture{db: db, repo: NewRepository(db)}

	f.joyce = &entities.Author{Name: "James Joyce"}
	require.NoError(t, db.Create(f.joyce).Error)
	f.novel = &entities.Genre{Name: "Modernist novel"}
	require.NoError(t, db.Create(f.novel).Error)

	f.ulysses = &entities.Book{Title: "Ulysses", Author: *f.joyce, Genre: *f.novel}
	require.NoError(t, f.repo.Create(f.ulysses))

	comment := &entities.Comment{Content: "Published in 1922", BookID: f.ulysses.ID}
	require.NoError(t, db.Omit("Book").Create(comment).Error)

	return f
}

func (f *fixture) addBook(t *testing.T, title, author, genre string) *entities.Book {
	a := entities.Author{Name: author}
	require.NoError(t, f.db.Where("name = ?", author).FirstOrCreate(&a).Error)
	g := entities.Genre{Name: genre}
	require.NoError(t, f.db.Where("name = ?", genre).FirstOrCreate(&g).Error)

	book := &entities.Book{Title: title, Author: a, Genre: g}
	require.NoError(t, f.repo.Create(book))
	return book
}

func TestRepository_Create_AssignsPositiveID(t *testing.T) {
	f := setupTestDB(t)

	book := f.addBook(t, "Discipline and Punish", "Michel Foucault", "Philosophy")

	assert.Positive(t, book.ID)
	assert.Positive(t, book.AuthorID)
	assert.Positive(t, book.GenreID)
}

func TestRepository_Create_DoesNotTouchAuthor(t *testing.T) {
	f := setupTestDB(t)

	book := &entities.Book{Title: "Dubliners", Author: entities.Author{ID: f.joyce.ID, Name: "renamed"}, Genre: *f.novel}
	require.NoError(t, f.repo.Create(book))

	var author entities.Author
	require.NoError(t, f.db.First(&author, f.joyce.ID).Error)
	assert.Equal(t, "James Joyce", author.Name)
}

func TestRepository_GetByID(t *testing.T) {
	f := setupTestDB(t)

	book, err := f.repo.GetByID(f.ulysses.ID)
	require.NoError(t, err)

	assert.Equal(t, "Ulysses", book.Title)
	assert.Equal(t, f.joyce.ID, book.Author.ID)
	assert.Equal(t, "James Joyce", book.Author.Name)
	assert.Equal(t, "Modernist novel", book.Genre.Name)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	f := setupTestDB(t)

	_, err := f.repo.GetByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetByTitle(t *testing.T) {
	f := setupTestDB(t)

	book, err := f.repo.GetByTitle("Ulysses")
	require.NoError(t, err)
	assert.Equal(t, f.ulysses.ID, book.ID)
	assert.Equal(t, "James Joyce", book.Author.Name)

	_, err = f.repo.GetByTitle("Finnegans Wake")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetByAuthor(t *testing.T) {
	f := setupTestDB(t)
	f.addBook(t, "Dubliners", "James Joyce", "Short stories")
	f.addBook(t, "Orlando", "Virginia Woolf", "Modernist novel")

	books, err := f.repo.GetByAuthor("James Joyce")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Ulysses", books[0].Title)
	assert.Equal(t, "Dubliners", books[1].Title)
	assert.Equal(t, "Short stories", books[1].Genre.Name)

	books, err = f.repo.GetByAuthor("Nobody")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_GetByGenre(t *testing.T) {
	f := setupTestDB(t)
	f.addBook(t, "Orlando", "Virginia Woolf", "Modernist novel")
	f.addBook(t, "Discipline and Punish", "Michel Foucault", "Philosophy")

	books, err := f.repo.GetByGenre("Modernist novel")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Virginia Woolf", books[1].Author.Name)
}

func TestRepository_GetByComment(t *testing.T) {
	f := setupTestDB(t)

	book, err := f.repo.GetByComment("Published in 1922")
	require.NoError(t, err)
	assert.Equal(t, f.ulysses.ID, book.ID)
	assert.Equal(t, "Modernist novel", book.Genre.Name)

	_, err = f.repo.GetByComment("never written")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	f := setupTestDB(t)
	f.addBook(t, "Discipline And Punish", "Michel Foucault", "Philosophy")

	books, err := f.repo.GetAll()
	require.NoError(t, err)
	require.Len(t, books, 2)
	for _, b := range books {
		assert.NotEmpty(t, b.Title)
		assert.NotZero(t, b.Author.ID)
		assert.NotZero(t, b.Genre.ID)
	}
}

func TestRepository_Update(t *testing.T) {
	f := setupTestDB(t)
	other := f.addBook(t, "placeholder", "Michel Foucault", "Philosophy")

	book, err := f.repo.GetByID(f.ulysses.ID)
	require.NoError(t, err)
	book.Title = "Discipline and Punish"
	book.Author = other.Author
	book.Genre = other.Genre
	require.NoError(t, f.repo.Update(book))

	updated, err := f.repo.GetByID(f.ulysses.ID)
	require.NoError(t, err)
	assert.Equal(t, "Discipline and Punish", updated.Title)
	assert.Equal(t, "Michel Foucault", updated.Author.Name)
	assert.Equal(t, "Philosophy", updated.Genre.Name)
}

func TestRepository_DeleteByID_RemovesComments(t *testing.T) {
	f := setupTestDB(t)

	require.NoError(t, f.repo.DeleteByID(f.ulysses.ID))

	_, err := f.repo.GetByID(f.ulysses.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var comments int64
	require.NoError(t, f.db.Model(&entities.Comment{}).Count(&comments).Error)
	assert.Zero(t, comments)

	// author and genre are shared and stay
	var authors int64
	require.NoError(t, f.db.Model(&entities.Author{}).Count(&authors).Error)
	assert.Equal(t, int64(1), authors)
}

func TestRepository_Count(t *testing.T) {
	f := setupTestDB(t)
	f.addBook(t, "Dubliners", "James Joyce", "Short stories")

	count, err := f.repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
