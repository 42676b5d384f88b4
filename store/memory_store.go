package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookapi/models"
)

// MemoryBookStore keeps all books in a mutex-guarded map for the lifetime of
// the process. A separate id slice preserves insertion order for List.
type MemoryBookStore struct {
	mu    sync.RWMutex
	books map[string]models.Book
	order []string
}

func NewMemoryBookStore() *MemoryBookStore {
	return &MemoryBookStore{
		books: make(map[string]models.Book),
	}
}

// Create assigns a fresh uuid and inserts the record. It never fails given a
// normalized payload.
func (s *MemoryBookStore) Create(payload models.BookCreate) (models.Book, error) {
	now := time.Now().UTC()
	book := models.Book{
		ID:            uuid.NewString(),
		Title:         payload.Title,
		Author:        payload.Author,
		PublishedYear: payload.PublishedYear,
		Price:         payload.Price,
		Tags:          slices.Clone(payload.Tags),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	return book, nil
}

func (s *MemoryBookStore) GetByID(id string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return book, nil
}

// Update merges the present fields of the update into the stored record. The
// timestamp only moves when at least one field was applied, so an empty
// partial leaves the record byte-for-byte unchanged.
func (s *MemoryBookStore) Update(id string, update models.BookUpdate) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}

	if update.Apply(&book) {
		book.UpdatedAt = time.Now().UTC()
	}

	s.books[id] = book
	return book, nil
}

func (s *MemoryBookStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrBookNotFound
	}

	delete(s.books, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})
	return nil
}

func (s *MemoryBookStore) List(tag string) ([]models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Book, 0, len(s.order))
	for _, id := range s.order {
		book := s.books[id]
		if tag != "" && !slices.Contains(book.Tags, tag) {
			continue
		}
		result = append(result, book)
	}
	return result, nil
}
