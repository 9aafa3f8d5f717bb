// Package cli implements the rnc-tokens command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/ruscorpora/internal/logger"
)

var (
	verboseFlag bool
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "rnc-tokens",
	Short: "Normalize Russian National Corpus XML into tokens",
	Long: `rnc-tokens reads corpus exports made of <se>, <w> and <ana> elements and
prints normalized tokens: one reading per word, split and hyphenated words
joined, punctuation tagged.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "normalization options file (.yaml, .yml or .toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
