package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/ingest"
	"github.com/c360studio/casebridge/translate"
)

func translateCmd(logLevel *string) *cobra.Command {
	var (
		targetFormat string
		inputFormat  string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a CASE document (JSON, CSV, or Excel) to JSON-LD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadConfig(*logLevel); err != nil {
				return err
			}

			format, err := translate.ParseFormat(targetFormat)
			if err != nil {
				return err
			}

			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			doc, err := ingest.DefaultRegistry.Parse(path, content, ingest.Format(inputFormat))
			if err != nil {
				return err
			}

			graph, stats, err := translate.Assemble(doc, format)
			if err != nil {
				return err
			}
			if stats.DroppedRelations > 0 {
				fmt.Fprintf(os.Stderr, "warning: %d relation(s) dropped (origin not a translated competency)\n", stats.DroppedRelations)
			}

			data, err := json.MarshalIndent(graph, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if outputPath == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(outputPath, data, 0644)
		},
	}

	cmd.Flags().StringVar(&targetFormat, "format", string(translate.FormatSCD), "Target format: ieee_scd or asn_ctdl")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format override: json, csv, or excel")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	return cmd
}
