package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/vinculum/internal/model"
	"github.com/rcliao/vinculum/internal/numeral"
	"github.com/rcliao/vinculum/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "roman [number]",
		Short: "Convert a number to a Roman numeral",
		Long:  "Convert a number in [0, 999999] to a Roman numeral. Zero converts to an empty numeral.",
		Args:  cobra.ExactArgs(1),
		Run:   runRoman,
	}

	cmd.Flags().BoolP("separate", "s", false, "Keep one space-separated part per power of ten")
	cmd.Flags().Bool("save", false, "Record the conversion in the journal")

	RootCmd.AddCommand(cmd)
}

// romanResult is the JSON output of roman.
type romanResult struct {
	Value     int    `json:"value"`
	Numeral   string `json:"numeral"`
	Separated bool   `json:"separated"`
	ID        string `json:"id,omitempty"`
}

func runRoman(cmd *cobra.Command, args []string) {
	separate, _ := cmd.Flags().GetBool("separate")
	if !cmd.Flags().Changed("separate") {
		separate = cfg.Separate
	}
	save, _ := cmd.Flags().GetBool("save")

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		exitErr("roman", fmt.Errorf("not a number: %q", args[0]))
	}

	s, err := numeral.ToRoman(n, separate)
	if err != nil {
		exitErr("roman", err)
	}
	logger.Debug("converted to roman", zap.Int("value", n), zap.String("numeral", s))

	res := romanResult{Value: n, Numeral: s, Separated: separate}
	if save {
		res.ID = record(cmd, store.RecordParams{
			Direction: model.DirectionToRoman,
			Numeral:   s,
			Value:     n,
			Separated: separate,
		})
	}

	output(cmd, res, s)
}

// record saves a conversion and returns its ID.
func record(cmd *cobra.Command, p store.RecordParams) string {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.Record(cmd.Context(), p)
	if err != nil {
		exitErr("record", err)
	}
	logger.Debug("conversion recorded", zap.String("id", c.ID), zap.String("direction", c.Direction))
	return c.ID
}
