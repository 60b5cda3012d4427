package cmd

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/honganh1206/booknest/book"
	"github.com/honganh1206/booknest/history"
	"github.com/honganh1206/booknest/search"
	"github.com/honganh1206/booknest/server"
	"github.com/honganh1206/booknest/suggest"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the search API server",
	RunE:  serveHandler,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
}

func serveHandler(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(resolveDataDir(), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	books, err := book.Open(booksPath())
	if err != nil {
		log.Fatalf("Failed to open book store: %s", err.Error())
	}
	defer books.Close()

	historyDB, err := history.InitDB(historyPath())
	if err != nil {
		log.Fatalf("Failed to initialize history database: %s", err.Error())
	}
	defer historyDB.Close()
	historyStore := &history.Store{DB: historyDB}

	suggester, err := suggest.Init(cmd.Context(), suggest.Config{
		Provider:  suggestProvider,
		Model:     suggestModel,
		MaxTokens: suggestTokens,
	})
	if err != nil {
		return err
	}

	engine := search.NewEngine(books, suggester, historyStore, search.DefaultConfig())

	deps := server.Deps{
		Books:   books,
		Engine:  engine,
		History: historyStore,
	}
	// Related-search generation needs an LLM-backed service.
	if svc, ok := suggester.(*suggest.Service); ok {
		deps.Related = svc
	}

	ln, err := net.Listen("tcp", serveAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", serveAddr, err)
	}

	if verbose {
		fmt.Printf("Serving booknest API on %s (suggestions: %s)\n", serveAddr, suggestProvider)
	}
	return server.Serve(ln, deps)
}
