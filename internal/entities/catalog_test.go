package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_String(t *testing.T) {
	book := Book{
		ID:     1,
		Title:  "Ulysses",
		Author: Author{ID: 1, Name: "James Joyce"},
		Genre:  Genre{ID: 1, Name: "Modernist novel"},
	}

	assert.Equal(t, "Id: 1\nTitle: Ulysses\nAuthor: James Joyce\nGenre: Modernist novel", book.String())
}

func TestComment_String(t *testing.T) {
	comment := Comment{
		ID:      3,
		Content: "Published in 1922",
		Book:    Book{Title: "Ulysses"},
	}

	assert.Equal(t, "Comment 'Published in 1922' to book Ulysses", comment.String())
}

func TestAuthorAndGenre_String(t *testing.T) {
	assert.Equal(t, "Id: 2\nName: Michel Foucault", Author{ID: 2, Name: "Michel Foucault"}.String())
	assert.Equal(t, "Id: 5\nName: Philosophy", Genre{ID: 5, Name: "Philosophy"}.String())
}
