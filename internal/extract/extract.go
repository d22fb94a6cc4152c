// Package extract turns a free-form model response into the four journal
// insight sections.
//
// The model is asked for four numbered sections, but it does not always
// follow the layout verbatim: headers gain or lose bold markers, colons and
// parenthetical notes. Extraction first tries one pattern over the whole
// response and, when that fails, recovers each section on its own. It never
// returns an error; a section that cannot be found is left empty.
package extract

import (
	"regexp"
	"strings"

	"github.com/rcliao/reflect-journal/internal/model"
)

// Strategy names the pass that produced a result.
type Strategy string

const (
	StrategyPrimary  Strategy = "primary"
	StrategyFallback Strategy = "fallback"
)

// Header describes one numbered section header.
type Header struct {
	Number string
	Label  string
}

// Headers are the section headers in the order the model is asked to emit
// them.
var Headers = [4]Header{
	{"1", "Inner Reflection Summary"},
	{"2", "Dream Interpretation Summary"},
	{"3", "Energy/Mindset Insight"},
	{"4", "Suggested Day Strategy"},
}

// Result is the outcome of an extraction.
type Result struct {
	Insights model.Insights
	Strategy Strategy
	// Found reports, per section, whether its header was located.
	Found [4]bool
}

var (
	primaryRe  *regexp.Regexp
	headerRes  [4]*regexp.Regexp
	lineHeadRe [4]*regexp.Regexp
)

func init() {
	var b strings.Builder
	b.WriteString(`(?is)`)
	for i, h := range Headers {
		b.WriteString(headerPattern(h))
		if i < len(Headers)-1 {
			b.WriteString(`(.*?)`)
		} else {
			b.WriteString(`(.*)`)
		}
	}
	primaryRe = regexp.MustCompile(b.String())

	for i, h := range Headers {
		headerRes[i] = regexp.MustCompile(`(?is)` + headerPattern(h))
		lineHeadRe[i] = regexp.MustCompile(`(?im)^[ \t]*` + headerStart(h))
	}
}

// headerStart matches the number and label, with optional heading marks and
// bold markers in front.
func headerStart(h Header) string {
	words := strings.Fields(h.Label)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return `(?:#+[ \t]*)?(?:\*\*)?\s*` + regexp.QuoteMeta(h.Number) + `\.\s*` + strings.Join(words, `\s+`)
}

// headerPattern matches a full header line: start, optional parenthetical
// note, optional colon and closing bold, then the line break.
func headerPattern(h Header) string {
	return headerStart(h) + `(?:[ \t]*\([^)\n]*\))?[ \t]*:?[ \t]*(?:\*\*)?[ \t]*:?\s*\n`
}

// Sections extracts the four insight sections from text.
func Sections(text string) model.Insights {
	return Parse(text).Insights
}

// Parse extracts the four sections and reports which pass succeeded.
func Parse(text string) Result {
	if m := primaryRe.FindStringSubmatch(text); m != nil {
		return Result{
			Insights: model.Insights{
				Reflection:          strings.TrimSpace(m[1]),
				DreamInterpretation: strings.TrimSpace(m[2]),
				MindsetInsight:      strings.TrimSpace(m[3]),
				Strategy:            strings.TrimSpace(m[4]),
			},
			Strategy: StrategyPrimary,
			Found:    [4]bool{true, true, true, true},
		}
	}

	var sections [4]string
	var found [4]bool
	for i := range Headers {
		sections[i], found[i] = section(text, i)
	}
	return Result{
		Insights: model.Insights{
			Reflection:          sections[0],
			DreamInterpretation: sections[1],
			MindsetInsight:      sections[2],
			Strategy:            sections[3],
		},
		Strategy: StrategyFallback,
		Found:    found,
	}
}

// section finds header i and returns the text up to the nearest later
// header that starts a line, or to the end of text.
func section(text string, i int) (string, bool) {
	loc := headerRes[i].FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	body := text[loc[1]:]

	end := len(body)
	for j := i + 1; j < len(Headers); j++ {
		if next := lineHeadRe[j].FindStringIndex(body); next != nil && next[0] < end {
			end = next[0]
		}
	}
	return strings.TrimSpace(body[:end]), true
}
