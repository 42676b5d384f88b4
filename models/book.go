package models

import "time"

// Book is the stored entity. Records held by the store always satisfy the
// validation rules; the id is assigned on creation and never changes.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedYear int       `json:"published_year"`
	Price         float64   `json:"price"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookCreate is the payload for creating a book. Tags are optional.
type BookCreate struct {
	Title         string   `json:"title" validate:"required,notblank"`
	Author        string   `json:"author" validate:"required,notblank"`
	PublishedYear int      `json:"published_year" validate:"required,gte=1900,currentyear"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Tags          []string `json:"tags"`
}

// BookUpdate is the payload for a partial update. Every field is a pointer:
// nil means "leave the stored value alone", which keeps an absent tags field
// distinct from an explicit empty list.
type BookUpdate struct {
	Title         *string   `json:"title" validate:"omitempty,notblank"`
	Author        *string   `json:"author" validate:"omitempty,notblank"`
	PublishedYear *int      `json:"published_year" validate:"omitempty,gte=1900,currentyear"`
	Price         *float64  `json:"price" validate:"omitempty,gt=0"`
	Tags          *[]string `json:"tags"`
}

// Apply merges the present fields of the update into book and reports whether
// anything changed.
func (u BookUpdate) Apply(book *Book) bool {
	applied := false

	if u.Title != nil {
		book.Title = *u.Title
		applied = true
	}
	if u.Author != nil {
		book.Author = *u.Author
		applied = true
	}
	if u.PublishedYear != nil {
		book.PublishedYear = *u.PublishedYear
		applied = true
	}
	if u.Price != nil {
		book.Price = *u.Price
		applied = true
	}
	if u.Tags != nil {
		tags := make([]string, len(*u.Tags))
		copy(tags, *u.Tags)
		book.Tags = tags
		applied = true
	}

	return applied
}
