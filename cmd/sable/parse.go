package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sb",
	Short: "Parse a sable source file",
	Long:  `Parse builds and prints the syntax tree of a sable source file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("ast", true, "print the syntax tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	showAST, err := cmd.Flags().GetBool("ast")
	if err != nil {
		return fmt.Errorf("failed to get ast flag: %w", err)
	}

	result, err := driver.Parse(args[0], driver.Options{MaxDiagnostics: maxDiagnostics(cmd)})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(cmd, result)
	if showAST && result.Module != nil {
		diagfmt.DumpAST(os.Stdout, result.Module)
	}
	printTimings(cmd, result)

	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printTimings(cmd *cobra.Command, result *driver.Result) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !timings {
		return
	}
	t := result.Timings
	fmt.Fprintf(os.Stderr, "timings: lex %.2fms parse %.2fms check %.2fms total %.2fms\n",
		float64(t.Lex.Microseconds())/1000,
		float64(t.Parse.Microseconds())/1000,
		float64(t.Check.Microseconds())/1000,
		float64(t.Total().Microseconds())/1000)
}
