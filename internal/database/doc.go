// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into one sub-package per entity:
//
//	database/
//	├── database.go      # Connection setup, migrations, demo seeding
//	├── authors/         # Author CRUD and lookup-or-create
//	├── genres/          # Genre CRUD and lookup-or-create
//	├── books/           # Book CRUD, join-fetching author and genre
//	└── comments/        # Comment CRUD, preloading the commented book
//
// # Using Sub-packages
//
// Repositories wrap whatever *gorm.DB they are given, so the service layer
// builds them on the transaction handle:
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	err = db.DB.Transaction(func(tx *gorm.DB) error {
//		author, err := authors.NewRepository(tx).GetOrCreate("James Joyce")
//		...
//	})
//
// # Cascades
//
// Books reference authors and genres, comments reference books, all with
// ON DELETE CASCADE. The DeleteByID methods additionally remove dependents
// explicitly inside their transaction, so behavior is the same on drivers
// that do not enforce foreign keys.
package database
