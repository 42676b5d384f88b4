package store

import (
	"errors"

	"bookapi/models"
)

// ErrBookNotFound is returned when an operation references an id that is not
// in the store.
var ErrBookNotFound = errors.New("book not found")

// BookStore is the sole source of truth for book records. Implementations
// trust their input: payloads have already passed validation.
type BookStore interface {
	Create(payload models.BookCreate) (models.Book, error)
	GetByID(id string) (models.Book, error)
	Update(id string, update models.BookUpdate) (models.Book, error)
	Delete(id string) error
	// List returns books in insertion order. A non-empty tag restricts the
	// result to books whose tags contain it (exact, case-sensitive match).
	List(tag string) ([]models.Book, error)
}
