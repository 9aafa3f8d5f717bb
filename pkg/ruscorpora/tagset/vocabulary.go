package tagset

// Axis identifies one grammatical feature category of the corpus tagset.
// Every known grammeme belongs to exactly one axis.
type Axis int

const (
	AxisPOS Axis = iota
	AxisGender
	AxisAnimacy
	AxisNumber
	AxisCase
	AxisShortFull
	AxisDegree
	AxisAspect
	AxisTransitivity
	AxisVoice
	AxisVerbForm
	AxisMood
	AxisTense
	AxisPerson
	AxisOther
	AxisNonStandard
	AxisCustom

	numAxes
)

var axisNames = [numAxes]string{
	AxisPOS:          "pos",
	AxisGender:       "gender",
	AxisAnimacy:      "animacy",
	AxisNumber:       "number",
	AxisCase:         "case",
	AxisShortFull:    "short_full",
	AxisDegree:       "degree",
	AxisAspect:       "aspect",
	AxisTransitivity: "transitivity",
	AxisVoice:        "voice",
	AxisVerbForm:     "verb_form",
	AxisMood:         "mood",
	AxisTense:        "tense",
	AxisPerson:       "person",
	AxisOther:        "other",
	AxisNonStandard:  "non_standard",
	AxisCustom:       "custom",
}

// PunctGrammeme is the grammeme assigned to punctuation runs. It never
// occurs in corpus exports.
const PunctGrammeme = "PNCT"

// vocabulary lists the closed grammeme set of every axis.
var vocabulary = [numAxes][]string{
	AxisPOS: {
		"S",           // noun
		"A",           // adjective
		"NUM",         // numeral
		"A-NUM",       // numeral-adjective
		"ANUM",        // spelling of A-NUM found in actual exports
		"V",           // verb
		"ADV",         // adverb
		"PRAEDIC",     // predicative
		"PARENTH",     // parenthetical
		"S-PRO",       // pronoun-noun
		"A-PRO",       // pronoun-adjective
		"ADV-PRO",     // pronominal adverb
		"PRAEDIC-PRO", // pronominal predicative
		"PR",          // preposition
		"CONJ",        // conjunction
		"PART",        // particle
		"INTJ",        // interjection
		"NONLEX",
	},
	AxisGender:       {"m", "f", "m-f", "n"},
	AxisAnimacy:      {"anim", "inan"},
	AxisNumber:       {"sg", "pl"},
	AxisCase:         {"nom", "gen", "dat", "acc", "ins", "loc", "gen2", "acc2", "loc2", "voc", "adnum"},
	AxisShortFull:    {"brev", "plen"},
	AxisDegree:       {"comp", "comp2", "supr"},
	AxisAspect:       {"pf", "ipf"},
	AxisTransitivity: {"intr", "tran"},
	AxisVoice:        {"act", "pass", "med"},
	AxisVerbForm:     {"inf", "partcp", "ger"},
	AxisMood:         {"indic", "imper", "imper2"},
	AxisTense:        {"praet", "praes", "fut"},
	AxisPerson:       {"1p", "2p", "3p"},
	AxisOther: {
		"persn", // first name
		"patrn", // patronymic
		"zoon",  // animal name
		"0",     // indeclinable
		"obsc",  // obscene
		"famn",  // family name
	},
	AxisNonStandard: {"normal", "anom", "distort", "ciph", "INIT", "abbr"},
	AxisCustom:      {PunctGrammeme},
}

// axisOf maps every known grammeme to its axis.
var axisOf = func() map[string]Axis {
	m := make(map[string]Axis)
	for axis, grammemes := range vocabulary {
		for _, g := range grammemes {
			m[g] = Axis(axis)
		}
	}
	return m
}()

// String returns the axis name.
func (a Axis) String() string {
	if a < 0 || a >= numAxes {
		return "unknown"
	}
	return axisNames[a]
}

// Vocabulary returns the grammemes of the axis in canonical order.
func (a Axis) Vocabulary() []string {
	if a < 0 || a >= numAxes {
		return nil
	}
	return append([]string(nil), vocabulary[a]...)
}

// Axes returns every axis in declaration order.
func Axes() []Axis {
	axes := make([]Axis, numAxes)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// ParseAxis looks an axis up by its name.
func ParseAxis(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

// Known reports whether g is part of the closed vocabulary.
func Known(g string) bool {
	_, ok := axisOf[g]
	return ok
}

// AxisOf returns the axis g belongs to.
func AxisOf(g string) (Axis, bool) {
	a, ok := axisOf[g]
	return a, ok
}
