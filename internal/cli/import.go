package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/vinculum/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import conversions from JSON",
		Long:  "Import conversions from JSON on stdin. Expects the format produced by export; known IDs are skipped.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var conversions []model.Conversion
	if err := json.Unmarshal(data, &conversions); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), conversions)
	if err != nil {
		exitErr("import", err)
	}
	logger.Info("import finished", zap.Int("read", len(conversions)), zap.Int("imported", imported))

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
