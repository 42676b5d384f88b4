package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapi/models"
)

func dunePayload() models.BookCreate {
	return models.BookCreate{
		Title:         "Dune",
		Author:        "Herbert",
		PublishedYear: 1965,
		Price:         19.99,
		Tags:          []string{"scifi"},
	}
}

func TestCreateThenGetReturnsEqualRecord(t *testing.T) {
	library := NewMemoryBookStore()

	created, err := library.Create(dunePayload())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := library.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	library := NewMemoryBookStore()

	first, err := library.Create(dunePayload())
	require.NoError(t, err)
	second, err := library.Create(dunePayload())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetUnknownIDFails(t *testing.T) {
	library := NewMemoryBookStore()

	_, err := library.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	library := NewMemoryBookStore()
	created, err := library.Create(dunePayload())
	require.NoError(t, err)

	price := 24.99
	updated, err := library.Update(created.ID, models.BookUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 24.99, updated.Price)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, "Herbert", updated.Author)
	assert.Equal(t, 1965, updated.PublishedYear)
	assert.Equal(t, []string{"scifi"}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateWithEmptyPartialChangesNothing(t *testing.T) {
	library := NewMemoryBookStore()
	created, err := library.Create(dunePayload())
	require.NoError(t, err)

	updated, err := library.Update(created.ID, models.BookUpdate{})
	require.NoError(t, err)

	assert.Equal(t, created, updated)
}

func TestUpdateCanClearTags(t *testing.T) {
	library := NewMemoryBookStore()
	created, err := library.Create(dunePayload())
	require.NoError(t, err)

	empty := []string{}
	updated, err := library.Update(created.ID, models.BookUpdate{Tags: &empty})
	require.NoError(t, err)

	assert.NotNil(t, updated.Tags)
	assert.Empty(t, updated.Tags)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	library := NewMemoryBookStore()

	price := 9.99
	_, err := library.Update("no-such-id", models.BookUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestDeleteThenGetFails(t *testing.T) {
	library := NewMemoryBookStore()
	created, err := library.Create(dunePayload())
	require.NoError(t, err)

	require.NoError(t, library.Delete(created.ID))

	_, err = library.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, library.Delete(created.ID), ErrBookNotFound)
}

func TestListReturnsInsertionOrder(t *testing.T) {
	library := NewMemoryBookStore()

	for _, title := range []string{"first", "second", "third"} {
		payload := dunePayload()
		payload.Title = title
		_, err := library.Create(payload)
		require.NoError(t, err)
	}

	books, err := library.List("")
	require.NoError(t, err)

	require.Len(t, books, 3)
	assert.Equal(t, "first", books[0].Title)
	assert.Equal(t, "second", books[1].Title)
	assert.Equal(t, "third", books[2].Title)
}

func TestListFiltersByTagCaseSensitively(t *testing.T) {
	library := NewMemoryBookStore()

	fiction := dunePayload()
	fiction.Title = "fiction one"
	fiction.Tags = []string{"fiction", "classic"}
	_, err := library.Create(fiction)
	require.NoError(t, err)

	capitalized := dunePayload()
	capitalized.Title = "capitalized"
	capitalized.Tags = []string{"Fiction"}
	_, err = library.Create(capitalized)
	require.NoError(t, err)

	untagged := dunePayload()
	untagged.Title = "untagged"
	untagged.Tags = nil
	_, err = library.Create(untagged)
	require.NoError(t, err)

	moreFiction := dunePayload()
	moreFiction.Title = "fiction two"
	moreFiction.Tags = []string{"fiction"}
	_, err = library.Create(moreFiction)
	require.NoError(t, err)

	books, err := library.List("fiction")
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, "fiction one", books[0].Title)
	assert.Equal(t, "fiction two", books[1].Title)
}

func TestListOnEmptyStoreIsEmptyNotNil(t *testing.T) {
	library := NewMemoryBookStore()

	books, err := library.List("")
	require.NoError(t, err)

	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestConcurrentCreatesStayConsistent(t *testing.T) {
	library := NewMemoryBookStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := library.Create(dunePayload())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	books, err := library.List("")
	require.NoError(t, err)
	require.Len(t, books, workers)

	seen := make(map[string]bool, workers)
	for _, book := range books {
		assert.False(t, seen[book.ID], "duplicate id %s", book.ID)
		seen[book.ID] = true
	}
}
