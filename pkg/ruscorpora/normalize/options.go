package normalize

import (
	"fmt"
	"strings"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
)

// DefaultPunctTag is the tag given to punctuation runs.
const DefaultPunctTag = "PNCT"

// Options toggles the normalization stages.
type Options struct {
	RemoveAccents  bool   `yaml:"remove_accents" toml:"remove_accents"`
	JoinSplit      bool   `yaml:"join_split" toml:"join_split"`
	JoinHyphenated bool   `yaml:"join_hyphenated" toml:"join_hyphenated"`
	PunctTag       string `yaml:"punct_tag" toml:"punct_tag"`
	WrapTags       bool   `yaml:"wrap_tags" toml:"wrap_tags"`
	Flatten        bool   `yaml:"flatten" toml:"flatten"`
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return Options{
		RemoveAccents:  true,
		JoinSplit:      true,
		JoinHyphenated: true,
		PunctTag:       DefaultPunctTag,
		WrapTags:       true,
		Flatten:        true,
	}
}

// Validate checks option values that cannot be fixed up silently.
func (o Options) Validate() error {
	if strings.TrimSpace(o.PunctTag) == "" {
		return fmt.Errorf("%w: punct_tag must not be empty", internalerr.ErrInvalidConfig)
	}
	if strings.ContainsAny(o.PunctTag, ",=") {
		return fmt.Errorf("%w: punct_tag %q must be a single grammeme", internalerr.ErrInvalidConfig, o.PunctTag)
	}
	return nil
}
