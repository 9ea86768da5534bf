package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var format string

var rootCmd = &cobra.Command{
	Use:   "toylang",
	Short: "Front end tooling for the toy language",
	Long: `Tokenizes and parses toy language source files.

Commands:
  tokens  - print the token stream of a source file
  parse   - print the parsed expressions of a source file`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")
}

func unknownFormat() error {
	return fmt.Errorf("unknown format %q", format)
}
