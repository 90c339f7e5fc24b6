package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/model"
	"github.com/rcliao/vinculum/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"list"},
		Short:   "List recorded conversions",
		Run:     runHistory,
	}

	cmd.Flags().String("direction", "", "Filter by direction: to_roman, to_arabic, check")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	direction, _ := cmd.Flags().GetString("direction")
	limit, _ := cmd.Flags().GetInt("limit")

	if direction != "" && !model.ValidDirections[direction] {
		exitErr("history", fmt.Errorf("invalid direction %q", direction))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	conversions, err := s.List(cmd.Context(), store.ListParams{
		Direction: direction,
		Limit:     limit,
	})
	if err != nil {
		exitErr("history", err)
	}
	if conversions == nil {
		conversions = []model.Conversion{}
	}

	output(cmd, conversions, historyText(conversions))
}

func historyText(conversions []model.Conversion) string {
	var text string
	for i, c := range conversions {
		if i > 0 {
			text += "\n"
		}
		text += fmt.Sprintf("%s  %-9s  %7d  %q  %s",
			c.ID, c.Direction, c.Value, c.Numeral, humanize.Time(c.CreatedAt))
	}
	return text
}
