package cli

import (
	"fmt"
	"io"
	"os"
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
		Use:   "arabic [numeral...]",
		Short: "Convert a Roman numeral to a number",
		Long: "Convert a Roman numeral to a number. The numeral can be positional args or piped via stdin.\n" +
			"Several args are joined with spaces and read one part per power of ten.\n" +
			"Unknown characters are ignored; run check first to reject malformed input.",
		Run: runArabic,
	}

	cmd.Flags().Bool("basic", false, "Ignore part boundaries and use the right-to-left subtractive rule")
	cmd.Flags().Bool("save", false, "Record the conversion in the journal")

	RootCmd.AddCommand(cmd)
}

// arabicResult is the JSON output of arabic.
type arabicResult struct {
	Numeral string `json:"numeral"`
	Value   int    `json:"value"`
	Method  string `json:"method"`
	ID      string `json:"id,omitempty"`
}

func runArabic(cmd *cobra.Command, args []string) {
	basic, _ := cmd.Flags().GetBool("basic")
	save, _ := cmd.Flags().GetBool("save")

	s := readNumeral(args)
	if s == "" {
		exitErr("arabic", fmt.Errorf("numeral is required (positional arg or stdin)"))
	}

	method := model.MethodMap
	var value int
	if basic {
		method = model.MethodBasic
		value = numeral.ToArabicBasic(s)
	} else {
		var err error
		if value, err = numeral.ToArabic(s); err != nil {
			exitErr("arabic", err)
		}
	}
	logger.Debug("converted to arabic",
		zap.String("numeral", s), zap.Int("value", value), zap.String("method", method))

	res := arabicResult{Numeral: s, Value: value, Method: method}
	if save {
		res.ID = record(cmd, store.RecordParams{
			Direction: model.DirectionToArabic,
			Numeral:   s,
			Value:     value,
			Separated: strings.ContainsRune(s, numeral.Separator),
			Method:    method,
		})
	}

	output(cmd, res, strconv.Itoa(value))
}

// readNumeral takes the numeral from args, falling back to piped stdin.
// Only the trailing newline of stdin is dropped: spaces are part boundaries.
func readNumeral(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return strings.TrimRight(string(b), "\r\n")
	}
	return ""
}
