package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/cognicore/ruscorpora/pkg/ruscorpora/internalerr"
)

func wrapCorpus(body string) string {
	return "<?xml version=\"1.0\" encoding=\"utf-8\" ?>\n<corpus>\n" + body + "\n</corpus>"
}

func TestReadSimpleSentence(t *testing.T) {
	doc := wrapCorpus(`
    <se>«
    <w><ana lex="школа" gr="S,f,inan=sg,nom"></ana>Шк` + "`" + `ола</w>
     <w><ana lex="злословие" gr="S,n,inan=sg,gen"></ana>злосл` + "`" + `овия</w> » ,-
    <w><ana lex="сми" gr="S,0=sg,nom"></ana>СМИ</w> !</se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	want := [][]RawToken{{
		{Text: "«"},
		{Text: "Шк`ола", Annotations: []RawAnnotation{{Lemma: "школа", Tag: "S,f,inan=sg,nom"}}},
		{Text: "злосл`овия", Annotations: []RawAnnotation{{Lemma: "злословие", Tag: "S,n,inan=sg,gen"}}},
		{Text: " » ,-"},
		{Text: "СМИ", Annotations: []RawAnnotation{{Lemma: "сми", Tag: "S,0=sg,nom"}}},
		{Text: " !"},
	}}
	if !reflect.DeepEqual(sents, want) {
		t.Errorf("got %#v\nwant %#v", sents, want)
	}
}

func TestReadJoinedAttribute(t *testing.T) {
	doc := wrapCorpus(`<se>
<w><ana lex="пол" gr="NUM" joined="together"></ana>пол</w><w><ana lex="дюжина" gr="S,f,inan=sg,gen" joined="together"></ana>дюжины</w>
<w><ana lex="кто" gr="S-PRO,m,anim=sg,nom" joined="hyphen"></ana>кто</w>-<w><ana lex="то" gr="PART" joined="hyphen"></ana>то</w>
</se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(sents) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sents))
	}

	var joins []JoinMode
	var texts []string
	for _, tok := range sents[0] {
		texts = append(texts, tok.Text)
		if tok.IsPunct() {
			joins = append(joins, JoinNone)
			continue
		}
		joins = append(joins, tok.Annotations[0].Join)
	}

	wantTexts := []string{"пол", "дюжины", "кто", "-", "то"}
	wantJoins := []JoinMode{JoinTogether, JoinTogether, JoinHyphen, JoinNone, JoinHyphen}
	if !reflect.DeepEqual(texts, wantTexts) {
		t.Errorf("texts = %q, want %q", texts, wantTexts)
	}
	if !reflect.DeepEqual(joins, wantJoins) {
		t.Errorf("joins = %v, want %v", joins, wantJoins)
	}
}

func TestReadMultipleAnalysesKeepOrder(t *testing.T) {
	doc := wrapCorpus(`<se><w><ana lex="стекло" gr="S,n,inan=sg,nom"></ana><ana lex="стекать" gr="V,ipf,intr,act=n,sg,praet,indic"></ana>стекло</w></se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	tok := sents[0][0]
	if tok.Text != "стекло" {
		t.Errorf("text = %q", tok.Text)
	}
	if len(tok.Annotations) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(tok.Annotations))
	}
	if tok.Annotations[0].Lemma != "стекло" || tok.Annotations[1].Lemma != "стекать" {
		t.Errorf("analyses out of order: %+v", tok.Annotations)
	}
}

func TestReadWordWithoutAnalysis(t *testing.T) {
	doc := wrapCorpus(`<se><w>XIV</w> век</se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []RawToken{{Text: "XIV"}, {Text: " век"}}
	if !reflect.DeepEqual(sents[0], want) {
		t.Errorf("got %#v, want %#v", sents[0], want)
	}
	if !sents[0][0].IsPunct() {
		t.Error("word without analyses should carry no annotations")
	}
}

func TestReadDropsBlankTokens(t *testing.T) {
	doc := wrapCorpus(`<se>

   <w><ana lex="да" gr="PART"></ana>Да</w>
   ...
   </se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []RawToken{
		{Text: "Да", Annotations: []RawAnnotation{{Lemma: "да", Tag: "PART"}}},
		{Text: "   ..."},
	}
	if !reflect.DeepEqual(sents[0], want) {
		t.Errorf("got %#v, want %#v", sents[0], want)
	}
}

func TestReadSentenceTailBelongsToSentence(t *testing.T) {
	doc := wrapCorpus(`<se><w><ana lex="да" gr="PART"></ana>Да</w></se> ?!
<se><w><ana lex="нет" gr="PART"></ana>Нет</w></se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}
	if len(sents[0]) != 2 || sents[0][1].Text != " ?!" {
		t.Errorf("first sentence = %#v", sents[0])
	}
	if len(sents[1]) != 1 {
		t.Errorf("second sentence = %#v", sents[1])
	}
}

func TestReadNestedSentences(t *testing.T) {
	doc := `<html><head><title>t</title></head><body>
<p><se><w><ana lex="раз" gr="NUM"></ana>Раз</w>.</se></p>
<p><se><w><ana lex="два" gr="NUM"></ana>Два</w>.</se></p>
</body></html>`

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}
	if sents[1][0].Text != "Два" || sents[1][1].Text != "." {
		t.Errorf("second sentence = %#v", sents[1])
	}
}

func TestReadSkipsUnknownElements(t *testing.T) {
	doc := wrapCorpus(`<se><w><ana lex="дом" gr="S,m,inan=sg,nom"></ana>дом<b>x</b></w><note>ignored</note> .</se>`)

	sents, err := ReadAll(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []RawToken{
		{Text: "дом", Annotations: []RawAnnotation{{Lemma: "дом", Tag: "S,m,inan=sg,nom"}}},
		{Text: " ."},
	}
	if !reflect.DeepEqual(sents[0], want) {
		t.Errorf("got %#v, want %#v", sents[0], want)
	}
}

func TestReadMalformedDocument(t *testing.T) {
	doc := wrapCorpus(`<se><w><ana lex="да" gr="PART"></ana>Да</se>`)

	_, err := ReadAll(strings.NewReader(doc))
	if !errors.Is(err, internalerr.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestReadTruncatedDocumentYieldsNoPartialSentence(t *testing.T) {
	doc := "<corpus><se><w><ana lex=\"раз\" gr=\"NUM\"></ana>Раз</w></se><se><w><ana lex=\"два\" gr=\"NUM\"></ana>Два"

	var got [][]RawToken
	var gotErr error
	for sent, err := range NewReader(strings.NewReader(doc)).Sentences() {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, sent)
	}

	if !errors.Is(gotErr, internalerr.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", gotErr)
	}
	if len(got) != 1 || got[0][0].Text != "Раз" {
		t.Errorf("only the complete sentence should be yielded, got %#v", got)
	}
}

func TestReadWindows1251(t *testing.T) {
	body := `<?xml version="1.0" encoding="windows-1251"?>
<corpus><se><w><ana lex="школа" gr="S,f,inan=sg,nom"></ana>школа</w></se></corpus>`
	encoded, err := charmap.Windows1251.NewEncoder().String(body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	sents, err := ReadAll(strings.NewReader(encoded))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if sents[0][0].Text != "школа" || sents[0][0].Annotations[0].Lemma != "школа" {
		t.Errorf("decoded token = %#v", sents[0][0])
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	doc := wrapCorpus(`<se><w><ana lex="раз" gr="NUM"></ana>Раз</w></se><se><w><ana lex="два" gr="NUM"></ana>Два</w></se>`)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, err := range ReadFile(path) {
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 sentences, got %d", count)
	}

	// Stopping early must not hang or fail.
	for range ReadFile(path) {
		break
	}
}

func TestReadFileMissing(t *testing.T) {
	for _, err := range ReadFile(filepath.Join(t.TempDir(), "missing.xml")) {
		if err == nil {
			t.Fatal("expected an error for a missing file")
		}
	}
}

func TestParseJoinMode(t *testing.T) {
	cases := map[string]JoinMode{
		"together": JoinTogether,
		"hyphen":   JoinHyphen,
		"":         JoinNone,
		"other":    JoinNone,
	}
	for in, want := range cases {
		if got := ParseJoinMode(in); got != want {
			t.Errorf("ParseJoinMode(%q) = %v, want %v", in, got, want)
		}
	}
	if JoinHyphen.String() != "hyphen" || JoinNone.String() != "" {
		t.Error("unexpected JoinMode strings")
	}
}
