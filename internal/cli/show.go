package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/vinculum/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a recorded conversion and its magnitude chunks",
		Run:   runShow,
	}

	cmd.Flags().String("id", "", "Conversion ID (required)")
	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

type showResult struct {
	model.Conversion
	Chunks []model.Chunk `json:"chunk_list"`
}

func runShow(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.Get(cmd.Context(), id)
	if err != nil {
		exitErr("show", err)
	}
	chunks, err := s.Chunks(cmd.Context(), id)
	if err != nil {
		exitErr("show", err)
	}
	if chunks == nil {
		chunks = []model.Chunk{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %q", c.Direction, c.Value, c.Numeral)
	for _, ch := range chunks {
		fmt.Fprintf(&b, "\n  10^%d  %s", ch.Level, ch.Text)
	}

	output(cmd, showResult{Conversion: *c, Chunks: chunks}, b.String())
}
