package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/vinculum/internal/model"
	"github.com/rcliao/vinculum/internal/numeral"
	"github.com/rcliao/vinculum/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [numeral]",
		Short: "Check that a classical numeral is well formed",
		Long: "Check repetition and subtraction rules. Only the letters IVXLCDM are accepted;\n" +
			"anything else, including the vinculum marker, is an error.",
		Args: cobra.ExactArgs(1),
		Run:  runCheck,
	}

	cmd.Flags().Bool("save", false, "Record the check in the journal")

	RootCmd.AddCommand(cmd)
}

// checkResult is the JSON output of check.
type checkResult struct {
	Numeral string `json:"numeral"`
	Valid   bool   `json:"valid"`
	ID      string `json:"id,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) {
	save, _ := cmd.Flags().GetBool("save")
	s := args[0]

	valid, err := numeral.IsValid(s)
	if err != nil {
		exitErr("check", err)
	}
	logger.Debug("checked numeral", zap.String("numeral", s), zap.Bool("valid", valid))

	res := checkResult{Numeral: s, Valid: valid}
	if save {
		res.ID = record(cmd, store.RecordParams{
			Direction: model.DirectionCheck,
			Numeral:   s,
			Value:     numeral.ToArabicBasic(s),
			Valid:     &valid,
		})
	}

	output(cmd, res, strconv.FormatBool(valid))
}
