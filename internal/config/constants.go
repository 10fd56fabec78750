package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultPrompt is printed before every line read by the interactive shell
	DefaultPrompt = "bookshelf:> "
)
