package cli

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
)

// stageFlags are the per-command switches overriding the options file.
type stageFlags struct {
	keepAccents  bool
	noJoinSplit  bool
	noJoinHyphen bool
	noFlatten    bool
	noWrapTags   bool
	punctTag     string
}

func (f *stageFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.keepAccents, "keep-accents", false, "keep stress marks in word forms")
	cmd.Flags().BoolVar(&f.noJoinSplit, "no-join-split", false, "do not join split words")
	cmd.Flags().BoolVar(&f.noJoinHyphen, "no-join-hyphenated", false, "do not join hyphenated words")
	cmd.Flags().BoolVar(&f.noFlatten, "no-flatten", false, "print every annotation instead of one reading per token")
	cmd.Flags().BoolVar(&f.noWrapTags, "no-validate-tags", false, "do not validate tags against the tagset")
	cmd.Flags().StringVar(&f.punctTag, "punct-tag", "", "tag assigned to punctuation (default "+normalize.DefaultPunctTag+")")
}

// override returns a hook applying only the switches that are set.
func (f *stageFlags) override() func(*normalize.Options) {
	return func(o *normalize.Options) {
		if f.keepAccents {
			o.RemoveAccents = false
		}
		if f.noJoinSplit {
			o.JoinSplit = false
		}
		if f.noJoinHyphen {
			o.JoinHyphenated = false
		}
		if f.noFlatten {
			o.Flatten = false
		}
		if f.noWrapTags {
			o.WrapTags = false
		}
		if f.punctTag != "" {
			o.PunctTag = f.punctTag
		}
	}
}
