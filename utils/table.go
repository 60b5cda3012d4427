package utils

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints rows as an ASCII table, used by the CLI to show
// search results and history.
func RenderTable(headers []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headers)
	table.Bulk(data)
	table.Render()
}

// FormatScore renders a relevance score the way the API reports it.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}
