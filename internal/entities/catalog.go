package entities

import (
	"fmt"
	"time"
)

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:256;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Author) String() string {
	return fmt.Sprintf("Id: %d\nName: %s", a.ID, a.Name)
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:256;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Genre) String() string {
	return fmt.Sprintf("Id: %d\nName: %s", g.ID, g.Name)
}

// Book belongs to exactly one Author and one Genre. Removing either of them
// removes the book.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512;not null" json:"title"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	Author    Author    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author"`
	GenreID   uint      `gorm:"index;not null" json:"genre_id"`
	Genre     Genre     `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Book) String() string {
	return fmt.Sprintf("Id: %d\nTitle: %s\nAuthor: %s\nGenre: %s", b.ID, b.Title, b.Author.Name, b.Genre.Name)
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	Book      Book      `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"book"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Comment) String() string {
	return fmt.Sprintf("Comment '%s' to book %s", c.Content, c.Book.Title)
}

// All returns every catalog model in migration order.
func All() []any {
	return []any{
		&Author{},
		&Genre{},
		&Book{},
		&Comment{},
	}
}
