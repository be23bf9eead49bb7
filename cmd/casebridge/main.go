// Package main provides the casebridge binary entry point.
// Casebridge translates 1EdTech CASE competency frameworks into
// IEEE SCD and ASN-CTDL JSON-LD.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "casebridge"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "CASE to IEEE SCD / ASN-CTDL translator",
		Long: `Casebridge translates 1EdTech CASE competency-framework documents
into JSON-LD in two target formats:

- IEEE SCD: associations become standalone ResourceAssociation nodes
- ASN-CTDL: associations become properties embedded on the origin competency

It can run as an HTTP service or translate files directly from the
command line, including best-effort reshaping of CSV and Excel inputs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(serveCmd(&logLevel))
	cmd.AddCommand(translateCmd(&logLevel))
	cmd.AddCommand(mappingCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s (built %s)\n", appName, Version, BuildTime)
		},
	}
}
