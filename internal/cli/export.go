package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded conversions as JSON",
		Long:  "Export recorded conversions as a JSON array, oldest first. Filter by direction with --direction.",
		Run:   runExport,
	}

	cmd.Flags().String("direction", "", "Filter by direction")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	direction, _ := cmd.Flags().GetString("direction")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	conversions, err := s.ExportAll(cmd.Context(), direction)
	if err != nil {
		exitErr("export", err)
	}
	if conversions == nil {
		conversions = []model.Conversion{}
	}

	b, _ := json.MarshalIndent(conversions, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
