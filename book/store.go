package book

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
)

var ErrBookNotFound = errors.New("book: not found")

const keyPrefix = "book:"

// Store persists books as JSON documents in buntdb. Pass ":memory:" as
// the path for an ephemeral store (tests, seeding dry runs).
type Store struct {
	db *buntdb.DB
}

func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book store: %w", err)
	}

	// Secondary index over the genre field for ByGenre scans.
	err = db.CreateIndex("genre", keyPrefix+"*", buntdb.IndexJSON("genre"))
	if err != nil && err != buntdb.ErrIndexExists {
		db.Close()
		return nil, fmt.Errorf("failed to create genre index: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Create assigns an ID and timestamps, then writes the document.
func (s *Store) Create(b *Book) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	now := time.Now()
	b.ID = id.String()
	b.CreatedAt = now
	b.UpdatedAt = now

	return s.put(b)
}

func (s *Store) Get(id string) (*Book, error) {
	var raw string
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		raw, err = tx.Get(keyPrefix + id)
		return err
	})
	if err != nil {
		if err == buntdb.ErrNotFound {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to load book %s: %w", id, err)
	}

	var b Book
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("failed to decode book %s: %w", id, err)
	}
	return &b, nil
}

// Update overwrites an existing document and bumps UpdatedAt. The book
// must already exist.
func (s *Store) Update(b *Book) error {
	if _, err := s.Get(b.ID); err != nil {
		return err
	}
	b.UpdatedAt = time.Now()
	return s.put(b)
}

func (s *Store) Delete(id string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(keyPrefix + id)
		return err
	})
	if err == buntdb.ErrNotFound {
		return ErrBookNotFound
	}
	return err
}

// AllBooks returns the full corpus snapshot, ordered by creation time
// so corpus order is stable across calls. It satisfies the corpus
// fetch contract of the search engine.
func (s *Store) AllBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(keyPrefix+"*", func(key, value string) bool {
			var b Book
			if err := json.Unmarshal([]byte(value), &b); err == nil {
				books = append(books, b)
			}
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].CreatedAt.Before(books[j].CreatedAt)
	})
	return books, nil
}

// Featured returns up to limit featured books. limit <= 0 means no cap.
func (s *Store) Featured(limit int) ([]Book, error) {
	return s.filter(limit, func(b *Book) bool { return b.IsFeatured })
}

// ByGenre scans the genre index for books in the given genre,
// case-insensitively. limit <= 0 means no cap.
func (s *Store) ByGenre(genre string, limit int) ([]Book, error) {
	want := strings.ToLower(genre)
	return s.filter(limit, func(b *Book) bool {
		return strings.ToLower(b.Genre) == want
	})
}

// Genres collects the distinct genre names in the store, in index
// (ascending genre) order.
func (s *Store) Genres() ([]string, error) {
	var genres []string
	seen := make(map[string]struct{})

	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("genre", func(key, value string) bool {
			var b Book
			if err := json.Unmarshal([]byte(value), &b); err != nil {
				return true
			}
			if _, dup := seen[b.Genre]; !dup {
				seen[b.Genre] = struct{}{}
				genres = append(genres, b.Genre)
			}
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan genres: %w", err)
	}
	return genres, nil
}

func (s *Store) filter(limit int, keep func(*Book) bool) ([]Book, error) {
	all, err := s.AllBooks(context.Background())
	if err != nil {
		return nil, err
	}

	var books []Book
	for i := range all {
		if !keep(&all[i]) {
			continue
		}
		books = append(books, all[i])
		if limit > 0 && len(books) == limit {
			break
		}
	}
	return books, nil
}

func (s *Store) put(b *Book) error {
	doc, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode book %s: %w", b.ID, err)
	}

	return s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(keyPrefix+b.ID, string(doc), nil)
		return err
	})
}
