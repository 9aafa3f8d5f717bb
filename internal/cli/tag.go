package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/tagset"
)

var tagCmd = &cobra.Command{
	Use:   "tag [tag]",
	Short: "Validate a tag and print its grammatical features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := tagset.Parse(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, axis := range tagset.Axes() {
			if g, ok := tag.Feature(axis); ok {
				fmt.Fprintf(out, "%-13s %s\n", axis, g)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
