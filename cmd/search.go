package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/honganh1206/booknest/book"
	"github.com/honganh1206/booknest/search"
	"github.com/honganh1206/booknest/suggest"
	"github.com/honganh1206/booknest/utils"
)

var (
	searchType     string
	searchPage     int
	searchPageSize int
	searchThresh   float64
	noSuggestions  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search against the local book store",
	Args:  cobra.MinimumNArgs(1),
	RunE:  searchHandler,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", string(search.TypeAll), "Result type (all, books, authors, categories)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 20, "Results per page")
	searchCmd.Flags().Float64Var(&searchThresh, "threshold", 0, "Fuzzy threshold override (0 keeps the default)")
	searchCmd.Flags().BoolVar(&noSuggestions, "no-suggestions", false, "Skip keyword suggestions")
}

func searchHandler(cmd *cobra.Command, args []string) error {
	books, err := book.Open(booksPath())
	if err != nil {
		return err
	}
	defer books.Close()

	suggester, err := suggest.Init(cmd.Context(), suggest.Config{
		Provider:  suggestProvider,
		Model:     suggestModel,
		MaxTokens: suggestTokens,
	})
	if err != nil {
		return err
	}

	// One-shot runs keep no history.
	engine := search.NewEngine(books, suggester, nil, search.DefaultConfig())

	includeSuggestions := !noSuggestions
	resp := engine.Search(cmd.Context(), search.Request{
		Query:    strings.Join(args, " "),
		Type:     search.Type(searchType),
		Page:     searchPage,
		PageSize: searchPageSize,
		Settings: &search.Settings{
			IncludeSuggestions: &includeSuggestions,
			FuzzyThreshold:     searchThresh,
		},
	})

	if !resp.Success {
		return fmt.Errorf("search failed: %s", resp.Error)
	}

	rows := make([][]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		rows = append(rows, []string{
			string(result.Type),
			result.Title,
			result.Subtitle,
			utils.FormatScore(result.Score),
			result.URL,
		})
	}
	utils.RenderTable([]string{"Type", "Title", "Subtitle", "Score", "URL"}, rows)

	fmt.Printf("%d results (page %d, %dms)\n", resp.TotalCount, resp.Page, resp.ProcessingTimeMS)
	if len(resp.SuggestedKeywords) > 0 {
		fmt.Println("Suggestions:", strings.Join(resp.SuggestedKeywords, ", "))
	}
	return nil
}
