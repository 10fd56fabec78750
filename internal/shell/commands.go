package shell

import (
	"github.com/spf13/cobra"
)

const (
	groupAuthors  = "authors"
	groupGenres   = "genres"
	groupBooks    = "books"
	groupComments = "comments"
)

// NewRootCommand builds the command tree the shell dispatches lines to.
func NewRootCommand(svc Services) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Manage a catalog of authors, genres, books and comments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddGroup(
		&cobra.Group{ID: groupAuthors, Title: "Authors:"},
		&cobra.Group{ID: groupGenres, Title: "Genres:"},
		&cobra.Group{ID: groupBooks, Title: "Books:"},
		&cobra.Group{ID: groupComments, Title: "Comments:"},
	)

	addGroup(root, groupAuthors, newAuthorCommands(svc.Authors))
	addGroup(root, groupGenres, newGenreCommands(svc.Genres))
	addGroup(root, groupBooks, newBookCommands(svc.Books))
	addGroup(root, groupComments, newCommentCommands(svc.Comments))
	root.AddCommand(newStatsCommand(svc))

	return root
}

func addGroup(root *cobra.Command, group string, cmds []*cobra.Command) {
	for _, cmd := range cmds {
		cmd.GroupID = group
		// free text such as a comment may start with a dash
		cmd.DisableFlagParsing = true
		withHelp(cmd)
		root.AddCommand(cmd)
	}
}

// withHelp restores -h and --help as the only argument, which cobra stops
// recognizing once flag parsing is disabled.
func withHelp(cmd *cobra.Command) {
	validate, run := cmd.Args, cmd.RunE

	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if isHelp(args) {
			return nil
		}
		return validate(cmd, args)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if isHelp(args) {
			return cmd.Help()
		}
		return run(cmd, args)
	}
}

func isHelp(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func newAuthorCommands(authors AuthorService) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:     "aInsert <name>",
			Aliases: []string{"ai"},
			Short:   "Insert an author",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				author, err := authors.Save(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "You successfully saved a %s to repository", author.Name)
			},
		},
		{
			Use:     "authorById <id>",
			Aliases: []string{"abi"},
			Short:   "Show an author by id",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				author, err := authors.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s", author)
			},
		},
		{
			Use:     "authorByName <name>",
			Aliases: []string{"abn"},
			Short:   "Show an author by name",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				author, err := authors.GetByName(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", author)
			},
		},
		{
			Use:     "aGetAll",
			Aliases: []string{"aga"},
			Short:   "List all authors",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				all, err := authors.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(all))
			},
		},
		{
			Use:     "aUpdate <id> <name>",
			Aliases: []string{"au"},
			Short:   "Rename an author",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				author, err := authors.Update(cmd.Context(), id, reformat(args[1]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s was updated", author.Name)
			},
		},
		{
			Use:     "aDelete <id>",
			Aliases: []string{"ad"},
			Short:   "Delete an author with all of their books",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				author, err := authors.DeleteByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s was deleted", author.Name)
			},
		},
	}
}

func newGenreCommands(genres GenreService) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:     "gInsert <name>",
			Aliases: []string{"gi"},
			Short:   "Insert a genre",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				genre, err := genres.Save(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "You successfully saved a %s to repository", genre.Name)
			},
		},
		{
			Use:     "genreById <id>",
			Aliases: []string{"gbi", "gById"},
			Short:   "Show a genre by id",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				genre, err := genres.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s", genre)
			},
		},
		{
			Use:     "genreByName <name>",
			Aliases: []string{"gbn", "gByName"},
			Short:   "Show a genre by name",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				genre, err := genres.GetByName(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", genre)
			},
		},
		{
			Use:     "gGetAll",
			Aliases: []string{"gga"},
			Short:   "List all genres",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				all, err := genres.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(all))
			},
		},
		{
			Use:     "gUpdate <id> <name>",
			Aliases: []string{"gu"},
			Short:   "Rename a genre",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				genre, err := genres.Update(cmd.Context(), id, reformat(args[1]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s was updated", genre.Name)
			},
		},
		{
			Use:     "gDelete <id>",
			Aliases: []string{"gd"},
			Short:   "Delete a genre with all of its books",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				genre, err := genres.DeleteByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s was deleted", genre.Name)
			},
		},
	}
}

func newBookCommands(books BookService) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:     "bInsert <title> <author> <genre>",
			Aliases: []string{"bi"},
			Short:   "Insert a book, creating its author and genre when needed",
			Args:    cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				book, err := books.Save(cmd.Context(), reformat(args[0]), reformat(args[1]), reformat(args[2]))
				if err != nil {
					return err
				}
				return respond(cmd, "You successfully inserted a %s to repository", book.Title)
			},
		},
		{
			Use:     "bookById <id>",
			Aliases: []string{"bbi"},
			Short:   "Show a book by id",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				book, err := books.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s", book)
			},
		},
		{
			Use:     "bookByTitle <title>",
			Aliases: []string{"bbt"},
			Short:   "Show a book by title",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				book, err := books.GetByTitle(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", book)
			},
		},
		{
			Use:     "bookByAuthor <author>",
			Aliases: []string{"bba"},
			Short:   "List the books of an author",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				found, err := books.GetByAuthor(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(found))
			},
		},
		{
			Use:     "bookByGenre <genre>",
			Aliases: []string{"bbg"},
			Short:   "List the books of a genre",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				found, err := books.GetByGenre(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(found))
			},
		},
		{
			Use:     "bookByComment <content>",
			Aliases: []string{"bbc", "bByComment"},
			Short:   "Show the book a comment was left on",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				book, err := books.GetByComment(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", book)
			},
		},
		{
			Use:     "bGetAll",
			Aliases: []string{"bga"},
			Short:   "List all books",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				all, err := books.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(all))
			},
		},
		{
			Use:     "bUpdate <id> <title> <author> <genre>",
			Aliases: []string{"bu"},
			Short:   "Replace title, author and genre of a book",
			Args:    cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				book, err := books.Update(cmd.Context(), id, reformat(args[1]), reformat(args[2]), reformat(args[3]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s was updated", book.Title)
			},
		},
		{
			Use:     "bDelete <id>",
			Aliases: []string{"bd"},
			Short:   "Delete a book with its comments",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				book, err := books.DeleteByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s was deleted", book.Title)
			},
		},
	}
}

func newCommentCommands(comments CommentService) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:     "cInsert <bookId> <content>",
			Aliases: []string{"ci"},
			Short:   "Add a comment to a book",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				bookID, err := parseID(args[0])
				if err != nil {
					return err
				}
				comment, err := comments.Save(cmd.Context(), bookID, reformat(args[1]))
				if err != nil {
					return err
				}
				return respond(cmd, "You successfully added a comment to %s", comment.Book.Title)
			},
		},
		{
			Use:     "commentById <id>",
			Aliases: []string{"cbi", "cById"},
			Short:   "Show a comment by id",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				comment, err := comments.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s", comment)
			},
		},
		{
			Use:     "commentByContent <content>",
			Aliases: []string{"cbc", "cByContent"},
			Short:   "Show a comment by its content",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				comment, err := comments.GetByContent(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", comment)
			},
		},
		{
			Use:     "commentByBook <title>",
			Aliases: []string{"cbb", "cByBook"},
			Short:   "List the comments of a book",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				found, err := comments.GetByBook(cmd.Context(), reformat(args[0]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(found))
			},
		},
		{
			Use:     "cGetAll",
			Aliases: []string{"cga"},
			Short:   "List all comments",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				all, err := comments.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				return respond(cmd, "%s", renderList(all))
			},
		},
		{
			Use:     "cUpdate <bookId> <commentId> <content>",
			Aliases: []string{"cu"},
			Short:   "Rewrite a comment and attach it to a book",
			Args:    cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				bookID, err := parseID(args[0])
				if err != nil {
					return err
				}
				commentID, err := parseID(args[1])
				if err != nil {
					return err
				}
				comment, err := comments.Update(cmd.Context(), bookID, commentID, reformat(args[2]))
				if err != nil {
					return err
				}
				return respond(cmd, "%s comment was updated", comment.Book.Title)
			},
		},
		{
			Use:     "cDelete <id>",
			Aliases: []string{"cd"},
			Short:   "Delete a comment",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				comment, err := comments.DeleteByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return respond(cmd, "%s comment was deleted", comment.Book.Title)
			},
		},
	}
}

func newStatsCommand(svc Services) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"st"},
		Short:   "Count the rows of every catalog entity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			authors, err := svc.Authors.Count(ctx)
			if err != nil {
				return err
			}
			genres, err := svc.Genres.Count(ctx)
			if err != nil {
				return err
			}
			books, err := svc.Books.Count(ctx)
			if err != nil {
				return err
			}
			comments, err := svc.Comments.Count(ctx)
			if err != nil {
				return err
			}

			return respond(cmd, "Authors: %d\nGenres: %d\nBooks: %d\nComments: %d", authors, genres, books, comments)
		},
	}
}
