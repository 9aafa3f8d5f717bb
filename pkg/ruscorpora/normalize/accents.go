package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentMark is the stress mark used in corpus word forms ("Шк`ола").
const accentMark = "`"

// combiningStress holds U+0300 and U+0301, the combining stress marks some
// exports use instead of the backtick.
var combiningStress = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x0301, Stride: 1}},
}

// StripAccents removes stress marks from a word form.
func StripAccents(s string) string {
	s = strings.ReplaceAll(s, accentMark, "")
	if !strings.ContainsAny(s, "\u0300\u0301") {
		return s
	}

	t := transform.Chain(runes.Remove(runes.In(combiningStress)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
