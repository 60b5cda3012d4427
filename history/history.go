// Package history persists search history and analytics to sqlite.
// Writes are fire-and-forget from the search engine's point of view:
// a failure here is logged by the caller, never surfaced to the user.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/honganh1206/booknest/db"
	"github.com/honganh1206/booknest/search"
	"github.com/honganh1206/booknest/utils"
)

//go:embed schema.sql
var schemaSQL string

// AnonymousUser is recorded when a search carries no user ID.
const AnonymousUser = "anonymous"

// Item is one recorded search.
type Item struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	UserID      string    `json:"userId"`
	SearchType  string    `json:"searchType"`
	ResultCount int       `json:"resultCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// PopularSearch is a query with its recent occurrence count.
type PopularSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type Store struct {
	DB *sql.DB
}

func InitDB(dsn string) (*sql.DB, error) {
	dbConfig := db.Config{
		Dsn:          dsn,
		MaxOpenConns: 25,
		MaxIdleConns: 25,
		MaxIdleTime:  "15m",
	}

	historyDB, err := db.Open(dbConfig, schemaSQL)
	if err != nil {
		return nil, err
	}

	return historyDB, nil
}

// SaveSearch implements search.HistorySink.
func (s *Store) SaveSearch(ctx context.Context, entry search.HistoryEntry) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	userID := entry.UserID
	if userID == "" {
		userID = AnonymousUser
	}

	query := `
	INSERT INTO searches (id, user_id, query, search_type, result_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`

	_, err = s.DB.ExecContext(ctx, query,
		id.String(), userID, entry.Query, entry.SearchType, entry.ResultCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}
	return nil
}

// SaveAnalytics implements search.HistorySink.
func (s *Store) SaveAnalytics(ctx context.Context, rec search.AnalyticsRecord) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	query := `
	INSERT INTO analytics (id, query, user_id, search_type, result_count, processing_time_ms, had_results, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`

	_, err = s.DB.ExecContext(ctx, query,
		id.String(), rec.Query, rec.UserID, rec.SearchType, rec.ResultCount,
		rec.ProcessingTimeMS, rec.HadResults, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save search analytics: %w", err)
	}
	return nil
}

// List returns a user's most recent searches, newest first.
func (s *Store) List(ctx context.Context, userID string, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, query, search_type, result_count, created_at
	FROM searches
	WHERE user_id = ?
	ORDER BY created_at DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		var createdAt string

		if err := rows.Scan(&item.ID, &item.Query, &item.SearchType, &item.ResultCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan search history item: %w", err)
		}

		item.UserID = userID
		item.Timestamp, err = utils.ParseTimeWithFallback(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse search timestamp: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return items, nil
}

// Clear deletes all history for a user.
func (s *Store) Clear(ctx context.Context, userID string) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM searches WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

// Popular counts queries over the most recent analytics rows and
// returns the top entries. It samples limit*5 recent rows rather than
// aggregating the whole table.
func (s *Store) Popular(ctx context.Context, limit int) ([]PopularSearch, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
	SELECT query FROM analytics
	ORDER BY created_at DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, query, limit*5)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytics: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	var order []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("failed to scan analytics row: %w", err)
		}
		if q == "" {
			continue
		}
		if _, dup := counts[q]; !dup {
			order = append(order, q)
		}
		counts[q]++
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analytics rows: %w", err)
	}

	popular := make([]PopularSearch, 0, len(order))
	for _, q := range order {
		popular = append(popular, PopularSearch{Query: q, Count: counts[q]})
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Count > popular[j].Count
	})

	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular, nil
}
