package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"extractor/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract one tool record and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New("cli")
		p, err := buildPipeline(cmd.Context(), cfg, nil, log)
		if err != nil {
			return err
		}

		record, err := p.extract.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		return nil
	},
}
