package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/numeral"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Print the symbols used at each power of ten",
		Args:  cobra.NoArgs,
		Run:   runTiers,
	}

	RootCmd.AddCommand(cmd)
}

type tierRow struct {
	Level int `json:"level"`
	numeral.Tier
}

func runTiers(cmd *cobra.Command, args []string) {
	var rows []tierRow
	var b strings.Builder
	for level := 0; level < numeral.Levels; level++ {
		t, err := numeral.TierAt(level)
		if err != nil {
			exitErr("tiers", err)
		}
		rows = append(rows, tierRow{Level: level, Tier: t})
		if level > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "10^%d  %-3s %-3s %-3s", level, t.Unit, t.Mid, t.Upper)
	}

	output(cmd, rows, b.String())
}
