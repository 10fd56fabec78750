package shell

import (
	"context"
	"errors"

	"github.com/mrlokans/bookshelf/internal/entities"
)

var errFakeNotFound = errors.New("not found")

// fakeCatalog is an in-memory stand-in for the database backed services.
// It records the last arguments each mutating call received.
type fakeCatalog struct {
	authors  []entities.Author
	genres   []entities.Genre
	books    []entities.Book
	comments []entities.Comment

	lastName    string
	lastTitle   string
	lastContent string
	lastID      uint
	countErr    error
}

func newFakeCatalog() *fakeCatalog {
	author := entities.Author{ID: 1, Name: "James Joyce"}
	genre := entities.Genre{ID: 1, Name: "Modernist novel"}
	book := entities.Book{ID: 1, Title: "Ulysses", AuthorID: 1, Author: author, GenreID: 1, Genre: genre}
	return &fakeCatalog{
		authors:  []entities.Author{author},
		genres:   []entities.Genre{genre},
		books:    []entities.Book{book},
		comments: []entities.Comment{{ID: 1, Content: "Published in 1922", BookID: 1, Book: book}},
	}
}

func (f *fakeCatalog) services() Services {
	return Services{
		Authors:  fakeAuthors{f},
		Genres:   fakeGenres{f},
		Books:    fakeBooks{f},
		Comments: fakeComments{f},
	}
}

type fakeAuthors struct{ *fakeCatalog }

func (f fakeAuthors) Save(_ context.Context, name string) (*entities.Author, error) {
	f.lastName = name
	author := entities.Author{ID: uint(len(f.authors) + 1), Name: name}
	f.authors = append(f.authors, author)
	return &author, nil
}

func (f fakeAuthors) GetByID(_ context.Context, id uint) (*entities.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeAuthors) GetByName(_ context.Context, name string) (*entities.Author, error) {
	f.lastName = name
	for _, a := range f.authors {
		if a.Name == name {
			return &a, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeAuthors) GetAll(context.Context) ([]entities.Author, error) {
	return f.authors, nil
}

func (f fakeAuthors) Update(ctx context.Context, id uint, name string) (*entities.Author, error) {
	f.lastID, f.lastName = id, name
	author, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	author.Name = name
	return author, nil
}

func (f fakeAuthors) DeleteByID(ctx context.Context, id uint) (*entities.Author, error) {
	f.lastID = id
	return f.GetByID(ctx, id)
}

func (f fakeAuthors) Count(context.Context) (int64, error) {
	return int64(len(f.authors)), f.countErr
}

type fakeGenres struct{ *fakeCatalog }

func (f fakeGenres) Save(_ context.Context, name string) (*entities.Genre, error) {
	f.lastName = name
	genre := entities.Genre{ID: uint(len(f.genres) + 1), Name: name}
	f.genres = append(f.genres, genre)
	return &genre, nil
}

func (f fakeGenres) GetByID(_ context.Context, id uint) (*entities.Genre, error) {
	for _, g := range f.genres {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeGenres) GetByName(_ context.Context, name string) (*entities.Genre, error) {
	f.lastName = name
	for _, g := range f.genres {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeGenres) GetAll(context.Context) ([]entities.Genre, error) {
	return f.genres, nil
}

func (f fakeGenres) Update(ctx context.Context, id uint, name string) (*entities.Genre, error) {
	f.lastID, f.lastName = id, name
	genre, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genre.Name = name
	return genre, nil
}

func (f fakeGenres) DeleteByID(ctx context.Context, id uint) (*entities.Genre, error) {
	f.lastID = id
	return f.GetByID(ctx, id)
}

func (f fakeGenres) Count(context.Context) (int64, error) {
	return int64(len(f.genres)), nil
}

type fakeBooks struct{ *fakeCatalog }

func (f fakeBooks) Save(_ context.Context, title, author, genre string) (*entities.Book, error) {
	f.lastTitle, f.lastName = title, author+"|"+genre
	book := entities.Book{
		ID:     uint(len(f.books) + 1),
		Title:  title,
		Author: entities.Author{Name: author},
		Genre:  entities.Genre{Name: genre},
	}
	f.books = append(f.books, book)
	return &book, nil
}

func (f fakeBooks) GetByID(_ context.Context, id uint) (*entities.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeBooks) GetByTitle(_ context.Context, title string) (*entities.Book, error) {
	f.lastTitle = title
	for _, b := range f.books {
		if b.Title == title {
			return &b, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeBooks) GetByAuthor(_ context.Context, author string) ([]entities.Book, error) {
	f.lastName = author
	var found []entities.Book
	for _, b := range f.books {
		if b.Author.Name == author {
			found = append(found, b)
		}
	}
	return found, nil
}

func (f fakeBooks) GetByGenre(_ context.Context, genre string) ([]entities.Book, error) {
	f.lastName = genre
	var found []entities.Book
	for _, b := range f.books {
		if b.Genre.Name == genre {
			found = append(found, b)
		}
	}
	return found, nil
}

func (f fakeBooks) GetByComment(_ context.Context, content string) (*entities.Book, error) {
	f.lastContent = content
	for _, c := range f.comments {
		if c.Content == content {
			book := c.Book
			return &book, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeBooks) GetAll(context.Context) ([]entities.Book, error) {
	return f.books, nil
}

func (f fakeBooks) Update(ctx context.Context, id uint, title, author, genre string) (*entities.Book, error) {
	f.lastID, f.lastTitle, f.lastName = id, title, author+"|"+genre
	book, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	book.Title = title
	return book, nil
}

func (f fakeBooks) DeleteByID(ctx context.Context, id uint) (*entities.Book, error) {
	f.lastID = id
	return f.GetByID(ctx, id)
}

func (f fakeBooks) Count(context.Context) (int64, error) {
	return int64(len(f.books)), nil
}

type fakeComments struct{ *fakeCatalog }

func (f fakeComments) Save(ctx context.Context, bookID uint, content string) (*entities.Comment, error) {
	f.lastID, f.lastContent = bookID, content
	book, err := fakeBooks(f).GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	comment := entities.Comment{ID: uint(len(f.comments) + 1), Content: content, BookID: book.ID, Book: *book}
	f.comments = append(f.comments, comment)
	return &comment, nil
}

func (f fakeComments) GetByID(_ context.Context, id uint) (*entities.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeComments) GetByContent(_ context.Context, content string) (*entities.Comment, error) {
	f.lastContent = content
	for _, c := range f.comments {
		if c.Content == content {
			return &c, nil
		}
	}
	return nil, errFakeNotFound
}

func (f fakeComments) GetByBook(_ context.Context, title string) ([]entities.Comment, error) {
	f.lastTitle = title
	var found []entities.Comment
	for _, c := range f.comments {
		if c.Book.Title == title {
			found = append(found, c)
		}
	}
	return found, nil
}

func (f fakeComments) GetAll(context.Context) ([]entities.Comment, error) {
	return f.comments, nil
}

func (f fakeComments) Update(ctx context.Context, bookID, commentID uint, content string) (*entities.Comment, error) {
	f.lastID, f.lastContent = commentID, content
	book, err := fakeBooks(f).GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	comment, err := f.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	comment.Book = *book
	return comment, nil
}

func (f fakeComments) DeleteByID(ctx context.Context, id uint) (*entities.Comment, error) {
	f.lastID = id
	return f.GetByID(ctx, id)
}

func (f fakeComments) Count(context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}
