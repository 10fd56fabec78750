// Package interfaces documents the abstractions the catalog is built around.
//
// # Layers
//
//   - Repositories (internal/database/<entity>): one Repository per entity
//     over a *gorm.DB, usually a transaction. They return gorm errors as is.
//   - Services (internal/services): one service per entity. Every method opens
//     one transaction, builds repositories on it and translates
//     gorm.ErrRecordNotFound into services.ErrNotFound.
//   - Shell (internal/shell): AuthorService, GenreService, BookService and
//     CommentService describe what the commands need. Tests substitute
//     in-memory fakes.
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities and to entities.All so it is migrated.
//
//  2. Create internal/database/<entity> with a Repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add a service in internal/services and wire it in services.New.
//
//  4. Describe the service in internal/shell, register its commands in
//     NewRootCommand and add a compile-time check to checks.go:
//
//     var _ shell.PublisherService = (*services.PublisherService)(nil)
//
// # Compile-Time Interface Checks
//
// checks.go asserts that the concrete services satisfy the shell's
// interfaces:
//
//	go build ./internal/interfaces/...
package interfaces
