package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search recorded conversions by numeral text",
		Long:  "Search recorded numerals and their magnitude chunks. Use --level to match one power of ten only.",
		Args:  cobra.ExactArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().Int("level", -1, "Only match chunks at this power of ten (0 = ones)")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	level, _ := cmd.Flags().GetInt("level")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query: args[0],
		Level: level,
		Limit: limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if len(results) == 0 {
		output(cmd, []store.SearchResult{}, "")
		return
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		line := fmt.Sprintf("%s  %7d  %q", r.ID, r.Value, r.Numeral)
		if r.MatchChunk != nil {
			line += fmt.Sprintf("  (10^%d: %s)", r.MatchChunk.Level, r.MatchChunk.Text)
		}
		lines = append(lines, line)
	}
	output(cmd, results, strings.Join(lines, "\n"))
}
