// Package book defines the book record and its document store.
package book

import "time"

// Book is a single book document in the store. Authors and categories
// are not stored separately; they are derived from the book corpus.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn,omitempty"`
	Description   string    `json:"description,omitempty"`
	Genre         string    `json:"genre"`
	Language      string    `json:"language,omitempty"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency,omitempty"`
	InStock       bool      `json:"inStock"`
	StockQuantity int       `json:"stockQuantity"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	IsNew         bool      `json:"isNew,omitempty"`
	IsFeatured    bool      `json:"isFeatured,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
