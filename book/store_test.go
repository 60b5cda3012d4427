package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := openTestStore(t)

	b := &Book{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 15.50}
	require.NoError(t, store.Create(b))

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)

	got, err := store.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	assert.Equal(t, 15.50, got.Price)
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("no-such-id")
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

func TestStoreUpdate(t *testing.T) {
	store := openTestStore(t)

	b := &Book{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"}
	require.NoError(t, store.Create(b))

	b.Price = 18.00
	require.NoError(t, store.Update(b))

	got, err := store.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 18.00, got.Price)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	missing := &Book{ID: "no-such-id", Title: "Ghost"}
	assert.True(t, errors.Is(store.Update(missing), ErrBookNotFound))
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	b := &Book{Title: "Dune", Genre: "Science Fiction"}
	require.NoError(t, store.Create(b))

	require.NoError(t, store.Delete(b.ID))
	_, err := store.Get(b.ID)
	assert.True(t, errors.Is(err, ErrBookNotFound))

	assert.True(t, errors.Is(store.Delete(b.ID), ErrBookNotFound))
}

func TestStoreAllBooks(t *testing.T) {
	store := openTestStore(t)

	titles := []string{"Dune", "Foundation", "The Hobbit"}
	for _, title := range titles {
		require.NoError(t, store.Create(&Book{Title: title, Genre: "x"}))
	}

	books, err := store.AllBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)

	// Creation order, not key order.
	for i, title := range titles {
		assert.Equal(t, title, books[i].Title)
	}
}

func TestStoreFeatured(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Create(&Book{Title: "A", IsFeatured: true}))
	require.NoError(t, store.Create(&Book{Title: "B"}))
	require.NoError(t, store.Create(&Book{Title: "C", IsFeatured: true}))

	featured, err := store.Featured(0)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	capped, err := store.Featured(1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "A", capped[0].Title)
}

func TestStoreByGenre(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Create(&Book{Title: "Dune", Genre: "Science Fiction"}))
	require.NoError(t, store.Create(&Book{Title: "Emma", Genre: "Romance"}))
	require.NoError(t, store.Create(&Book{Title: "Foundation", Genre: "Science Fiction"}))

	books, err := store.ByGenre("science fiction", 0)
	require.NoError(t, err)
	assert.Len(t, books, 2)

	none, err := store.ByGenre("horror", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreGenres(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Create(&Book{Title: "Dune", Genre: "Science Fiction"}))
	require.NoError(t, store.Create(&Book{Title: "Emma", Genre: "Romance"}))
	require.NoError(t, store.Create(&Book{Title: "Foundation", Genre: "Science Fiction"}))

	genres, err := store.Genres()
	require.NoError(t, err)
	assert.Equal(t, []string{"Romance", "Science Fiction"}, genres)
}
