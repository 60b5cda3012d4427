package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/honganh1206/booknest/book"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file.json]",
	Short: "Load books into the store from a JSON file, or built-in samples",
	Args:  cobra.MaximumNArgs(1),
	RunE:  seedHandler,
}

func seedHandler(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(resolveDataDir(), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	books := sampleBooks
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
		books = nil
		if err := json.Unmarshal(raw, &books); err != nil {
			return fmt.Errorf("failed to parse seed file: %w", err)
		}
	}

	store, err := book.Open(booksPath())
	if err != nil {
		return err
	}
	defer store.Close()

	for i := range books {
		if err := store.Create(&books[i]); err != nil {
			return fmt.Errorf("failed to seed %q: %w", books[i].Title, err)
		}
	}

	fmt.Printf("Seeded %d books into %s\n", len(books), booksPath())
	return nil
}

func ratingOf(r float64) *float64 { return &r }

var sampleBooks = []book.Book{
	{
		Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction",
		Price: 12.99, Rating: ratingOf(4.5), InStock: true, StockQuantity: 12, IsFeatured: true,
		Description: "A portrait of the Jazz Age in all of its decadence and excess.",
	},
	{
		Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction",
		Price: 15.50, Rating: ratingOf(4.8), InStock: true, StockQuantity: 7,
		Description: "Paul Atreides and the desert planet Arrakis.",
	},
	{
		Title: "Foundation", Author: "Isaac Asimov", Genre: "Science Fiction",
		Price: 11.25, Rating: ratingOf(4.6), InStock: true, StockQuantity: 4,
	},
	{
		Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance",
		Price: 9.99, Rating: ratingOf(4.7), InStock: true, StockQuantity: 20,
	},
	{
		Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy",
		Price: 14.00, Rating: ratingOf(4.9), InStock: false, StockQuantity: 0, IsFeatured: true,
	},
	{
		Title: "A Brief History of Time", Author: "Stephen Hawking", Genre: "Science",
		Price: 18.75, Rating: ratingOf(4.4), InStock: true, StockQuantity: 9,
	},
}
