// Package cmd wires the booknest CLI: serve the API, run one-shot
// searches, and seed the book store.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/honganh1206/booknest/suggest"
)

var (
	dataDir         string
	envPath         string
	verbose         bool
	suggestProvider string
	suggestModel    string
	suggestTokens   int64
)

var rootCmd = &cobra.Command{
	Use:   "booknest",
	Short: "Bookstore search backend with fuzzy matching and AI suggestions",
	Long: `Booknest is a books-marketplace search backend. It ranks books, authors,
and categories against free-text queries using n-gram fuzzy matching, and
can refine searches with LLM-generated keyword suggestions.`,
	// Run before any subcommand
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		err := godotenv.Load(envPath)
		if err != nil && verbose {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
			fmt.Println("Continuing without environment variables from .env file...")
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.booknest)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "./.env", "Path to .env file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&suggestProvider, "suggest-provider", suggest.HeuristicProvider,
		"Suggestion provider (anthropic, gemini, heuristic)")
	rootCmd.PersistentFlags().StringVar(&suggestModel, "suggest-model", "", "Model for the suggestion provider")
	rootCmd.PersistentFlags().Int64Var(&suggestTokens, "suggest-max-tokens", 1024, "Max tokens per suggestion call")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	home, err := homedir.Dir()
	if err != nil {
		log.Fatal("Failed to get home directory:", err)
	}
	return filepath.Join(home, ".booknest")
}

func booksPath() string   { return filepath.Join(resolveDataDir(), "books.db") }
func historyPath() string { return filepath.Join(resolveDataDir(), "history.db") }
