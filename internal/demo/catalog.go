// Package demo holds sample catalog data built from public domain books.
package demo

// Book is one sample book with the comments left on it.
type Book struct {
	Title    string
	Author   string
	Genre    string
	Comments []string
}

// Seed is inserted into an empty store when seeding is enabled.
var Seed = Book{
	Title:    "Ulysses",
	Author:   "James Joyce",
	Genre:    "Modernist novel",
	Comments: []string{"Published in 1922"},
}

// Library returns a larger catalog for demo databases. It starts with Seed.
func Library() []Book {
	return []Book{
		Seed,
		{
			Title:    "Dubliners",
			Author:   "James Joyce",
			Genre:    "Short stories",
			Comments: []string{"Fifteen stories of Dublin life", "Ends with The Dead"},
		},
		{
			Title:    "Mrs Dalloway",
			Author:   "Virginia Woolf",
			Genre:    "Modernist novel",
			Comments: []string{"A single day in June 1923"},
		},
		{
			Title:  "The Trial",
			Author: "Franz Kafka",
			Genre:  "Modernist novel",
		},
		{
			Title:    "Meditations",
			Author:   "Marcus Aurelius",
			Genre:    "Philosophy",
			Comments: []string{"Written as private notes"},
		},
		{
			Title:    "Leaves of Grass",
			Author:   "Walt Whitman",
			Genre:    "Poetry",
			Comments: []string{"Revised over nine editions"},
		},
	}
}
