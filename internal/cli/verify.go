package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/verify"
)

func init() {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Round-trip every value in a range",
		Long:  "Convert each value to a numeral (joined and separated) and read it back, in parallel.",
		Args:  cobra.NoArgs,
		Run:   runVerify,
	}

	cmd.Flags().Int("from", 0, "First value")
	cmd.Flags().Int("to", 0, "End of range, exclusive (default: verify.to in config)")
	cmd.Flags().IntP("workers", "w", 0, "Parallel workers (default: verify.workers in config)")

	RootCmd.AddCommand(cmd)
}

func runVerify(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	workers, _ := cmd.Flags().GetInt("workers")
	if !cmd.Flags().Changed("to") {
		to = cfg.Verify.To
	}
	if !cmd.Flags().Changed("workers") {
		workers = cfg.Verify.Workers
	}

	report, err := verify.RoundTrip(cmd.Context(), verify.Params{
		From:    from,
		To:      to,
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		exitErr("verify", err)
	}

	text := fmt.Sprintf("%s values checked in %s, %s failed",
		humanize.Comma(int64(report.Checked)), report.Duration.Round(time.Millisecond), humanize.Comma(int64(report.Failed)))
	output(cmd, report, text)

	if !report.OK() {
		exitErr("verify", fmt.Errorf("%d values did not round-trip", report.Failed))
	}
}
