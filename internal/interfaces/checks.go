package interfaces

import (
	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/shell"
)

var _ shell.AuthorService = (*services.AuthorService)(nil)
var _ shell.GenreService = (*services.GenreService)(nil)
var _ shell.BookService = (*services.BookService)(nil)
var _ shell.CommentService = (*services.CommentService)(nil)
