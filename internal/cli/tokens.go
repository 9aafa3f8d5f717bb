package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/ruscorpora/internal/logger"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/config"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
)

var (
	tokensFormat string
	tokensStages stageFlags
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print normalized tokens of a corpus file",
	Long: `Prints one token per line, sentences separated by a blank line.
The tsv format prints text, lemma, tag and join mode; the jsonl format
prints one JSON object per sentence.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "tsv", "output format: tsv or jsonl")
	tokensStages.register(tokensCmd)
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	if tokensFormat != "tsv" && tokensFormat != "jsonl" {
		return fmt.Errorf("unknown format %q", tokensFormat)
	}

	comp, err := (&config.Loader{
		OptionsPath: configPath,
		Override:    tokensStages.override(),
	}).Load(cmd.Context())
	if err != nil {
		return err
	}
	defer comp.Close()
	logger.Debug("options: %+v", comp.Options)

	warnings := 0
	comp.Normalizer.OnWarning(func(w normalize.Warning) {
		warnings++
		logger.Warn("%s", w)
	})

	p := ruscorpora.New(ruscorpora.Options{Normalizer: comp.Normalizer})
	out := cmd.OutOrStdout()
	sentences := 0

	for sent, err := range p.File(args[0]) {
		if err != nil {
			return err
		}
		if tokensFormat == "jsonl" {
			err = writeJSONSentence(out, sent)
		} else {
			err = writeTSVSentence(out, sent)
		}
		if err != nil {
			return err
		}
		sentences++
	}

	logger.Info("%d sentences, %d warnings", sentences, warnings)
	return nil
}

func writeTSVSentence(w io.Writer, sent normalize.Sentence) error {
	var b strings.Builder
	if sent.Flat != nil {
		for _, f := range sent.Flat {
			fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", escapeField(f.Text), escapeField(f.Lemma), f.Gr, f.Join)
		}
	} else {
		for _, t := range sent.Tokens {
			b.WriteString(escapeField(t.Text))
			for _, a := range t.Annotations {
				fmt.Fprintf(&b, "\t%s\t%s\t%s", escapeField(a.Lemma), a.Gr, a.Join)
			}
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeField(s string) string {
	return strings.NewReplacer("\t", `\t`, "\n", `\n`).Replace(s)
}

type jsonAnnotation struct {
	Lemma  string `json:"lemma"`
	Tag    string `json:"tag"`
	Joined string `json:"joined,omitempty"`
}

type jsonToken struct {
	Text        string           `json:"text"`
	Annotations []jsonAnnotation `json:"annotations"`
}

type jsonSentence struct {
	Index  int         `json:"index"`
	Tokens []jsonToken `json:"tokens"`
}

func writeJSONSentence(w io.Writer, sent normalize.Sentence) error {
	js := jsonSentence{Index: sent.Index, Tokens: make([]jsonToken, 0, len(sent.Tokens))}
	if sent.Flat != nil {
		for _, f := range sent.Flat {
			js.Tokens = append(js.Tokens, jsonToken{
				Text:        f.Text,
				Annotations: []jsonAnnotation{{Lemma: f.Lemma, Tag: f.Gr, Joined: f.Join.String()}},
			})
		}
	} else {
		for _, t := range sent.Tokens {
			jt := jsonToken{Text: t.Text}
			for _, a := range t.Annotations {
				jt.Annotations = append(jt.Annotations, jsonAnnotation{Lemma: a.Lemma, Tag: a.Gr, Joined: a.Join.String()})
			}
			js.Tokens = append(js.Tokens, jt)
		}
	}
	return json.NewEncoder(w).Encode(js)
}
