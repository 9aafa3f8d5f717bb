package tagset

import (
	"fmt"
	"strings"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
)

// UnknownGrammemeError is returned when a probe is not a grammeme at all.
type UnknownGrammemeError struct {
	Grammeme string
}

func (e *UnknownGrammemeError) Error() string {
	return fmt.Sprintf("grammeme is unknown: %q", e.Grammeme)
}

// Is matches internalerr.ErrUnknownGrammeme.
func (e *UnknownGrammemeError) Is(target error) bool {
	return target == internalerr.ErrUnknownGrammeme
}

// InvalidGrammemeError is returned when a tag string contains grammemes
// outside the closed vocabulary.
type InvalidGrammemeError struct {
	Tag     string
	Unknown []string
}

func (e *InvalidGrammemeError) Error() string {
	quoted := make([]string, len(e.Unknown))
	for i, g := range e.Unknown {
		quoted[i] = fmt.Sprintf("%q", g)
	}
	return fmt.Sprintf("tag %q: unknown grammemes: %s", e.Tag, strings.Join(quoted, ", "))
}

// Is matches internalerr.ErrInvalidGrammeme.
func (e *InvalidGrammemeError) Is(target error) bool {
	return target == internalerr.ErrInvalidGrammeme
}
