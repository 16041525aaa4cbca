package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdi",
	Short: "Inspect the heading structure of markdown documents",
	Long: `mdi is a markdown inspector for working with large documents.

It parses the ATX heading structure of a file and lets you print a
line-numbered outline or extract a single section by heading line number
or title text, without loading the whole document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
