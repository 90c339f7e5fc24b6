package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journal statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", stats.DBPath, humanize.Bytes(uint64(stats.DBSizeBytes)))
	fmt.Fprintf(&b, "%s conversions (%s active), %s chunks\n",
		humanize.Comma(int64(stats.TotalConversions)),
		humanize.Comma(int64(stats.ActiveConversions)),
		humanize.Comma(int64(stats.TotalChunks)))
	fmt.Fprintf(&b, "%s with vinculum, largest value %s",
		humanize.Comma(int64(stats.VinculumNumerals)), humanize.Comma(int64(stats.LargestValue)))
	for _, d := range stats.Directions {
		fmt.Fprintf(&b, "\n  %-9s %s", d.Direction, humanize.Comma(int64(d.Count)))
	}

	output(cmd, stats, b.String())
}
