package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/cache"
	"bookapi/models"
	"bookapi/store"
	"bookapi/validation"
)

// Handlers holds the request handlers and their dependencies. The store and
// activity cacher are injected so tests can construct fresh instances.
type Handlers struct {
	library   store.BookStore
	validator *validation.BookValidator
	activity  cache.RequestCacher
	log       *slog.Logger
}

// NewHandlers wires the handler set. The activity cacher may be nil, which
// disables activity tracking.
func NewHandlers(library store.BookStore, validator *validation.BookValidator, activity cache.RequestCacher, log *slog.Logger) *Handlers {
	return &Handlers{
		library:   library,
		validator: validator,
		activity:  activity,
		log:       log,
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Book Management API is running"})
}

func (h *Handlers) CreateBook(c *gin.Context) {
	var payload models.BookCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logValidationFailure(c, err)
		respondValidationError(c, validation.FromJSONError(err))
		return
	}

	if err := h.validator.ValidateCreate(&payload); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			h.logValidationFailure(c, verr)
			respondValidationError(c, verr)
			return
		}
		h.internalError(c, "Failed to create book", err)
		return
	}

	book, err := h.library.Create(payload)
	if err != nil {
		h.internalError(c, "Failed to create book", err)
		return
	}

	h.log.Debug("book created", "book_id", book.ID, "title", book.Title)
	c.JSON(http.StatusCreated, book)
}

func (h *Handlers) GetBookByID(c *gin.Context) {
	id := c.Param("id")

	book, err := h.library.GetByID(id)
	if errors.Is(err, store.ErrBookNotFound) {
		h.log.Warn("book not found", "book_id", id)
		respondNotFound(c)
		return
	}
	if err != nil {
		h.internalError(c, "Failed to retrieve book", err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handlers) UpdateBookByID(c *gin.Context) {
	id := c.Param("id")

	var payload models.BookUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logValidationFailure(c, err)
		respondValidationError(c, validation.FromJSONError(err))
		return
	}

	if err := h.validator.ValidateUpdate(&payload); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			h.logValidationFailure(c, verr)
			respondValidationError(c, verr)
			return
		}
		h.internalError(c, "Failed to update book", err)
		return
	}

	book, err := h.library.Update(id, payload)
	if errors.Is(err, store.ErrBookNotFound) {
		h.log.Warn("book not found for update", "book_id", id)
		respondNotFound(c)
		return
	}
	if err != nil {
		h.internalError(c, "Failed to update book", err)
		return
	}

	h.log.Debug("book updated", "book_id", id)
	c.JSON(http.StatusOK, book)
}

func (h *Handlers) DeleteBookByID(c *gin.Context) {
	id := c.Param("id")

	err := h.library.Delete(id)
	if errors.Is(err, store.ErrBookNotFound) {
		h.log.Warn("book not found for deletion", "book_id", id)
		respondNotFound(c)
		return
	}
	if err != nil {
		h.internalError(c, "Failed to delete book", err)
		return
	}

	h.log.Debug("book deleted", "book_id", id)
	c.Status(http.StatusNoContent)
}

func (h *Handlers) ListBooks(c *gin.Context) {
	tag := c.Query("tag")

	books, err := h.library.List(tag)
	if err != nil {
		h.internalError(c, "Failed to retrieve books", err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// Activity returns the most recent recorded requests for a username.
func (h *Handlers) Activity(c *gin.Context) {
	username := c.Param("username")

	entries, err := h.activity.Read(username)
	if err != nil {
		h.internalError(c, "Failed to retrieve activity", err)
		return
	}

	userRequests := make([]models.UserRequest, 0, len(entries))
	for _, entry := range entries {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(entry), &userRequest); err != nil {
			h.log.Warn("skipping unreadable activity entry", "username", username, "error", err)
			continue
		}
		userRequests = append(userRequests, userRequest)
	}

	c.JSON(http.StatusOK, userRequests)
}

func (h *Handlers) internalError(c *gin.Context, message string, err error) {
	// Full detail stays server-side; the client gets a generic message.
	h.log.Error("internal error", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	respondError(c, http.StatusInternalServerError, ErrorKindInternal, message, nil)
}

func (h *Handlers) logValidationFailure(c *gin.Context, err error) {
	h.log.Warn("validation failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
}
