package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/fieldmap"
)

func mappingCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Export the CASE / IEEE SCD / ASN-CTDL field mapping as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return fieldmap.WriteCSV(os.Stdout, fieldmap.Reference())
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outputPath, err)
			}
			defer f.Close()

			if err := fieldmap.WriteCSV(f, fieldmap.Reference()); err != nil {
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	return cmd
}
