package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
	"sable/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sb",
	Short: "Tokenize a sable source file",
	Long:  `Tokenize breaks down a sable source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], driver.Options{MaxDiagnostics: maxDiagnostics(cmd)})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printDiagnostics renders a result's bag to stderr, if it has anything.
func printDiagnostics(cmd *cobra.Command, result *driver.Result) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	fs := source.NewFileSet()
	if result.File != nil {
		fs.Add(result.File)
	}
	result.Bag.Sort()
	opts := diagfmt.DefaultPrettyOpts()
	opts.Color = useColor(cmd, os.Stderr)
	diagfmt.Pretty(os.Stderr, result.Bag, fs, opts)
}
