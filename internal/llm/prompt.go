package llm

import (
	"strings"
	"text/template"

	"github.com/rcliao/reflect-journal/internal/model"
)

var promptTmpl = template.Must(template.New("prompt").Parse(`You are a daily reflection and planning assistant. Your goal is to:
1. Reflect on the user's journal and dream input
2. Interpret the user's emotional and mental state
3. Understand their intention and 3 priorities
4. Generate a practical, energy-aligned strategy for their day
INPUT:
Morning Journal: {{.Journal}}
Intention: {{.Intention}}
Dream: {{.Dream}}
Top 3 Priorities: {{.Priorities}}
OUTPUT:
1. Inner Reflection Summary
2. Dream Interpretation Summary
3. Energy/Mindset Insight
4. Suggested Day Strategy (time-aligned tasks)
`))

// BuildPrompt embeds the raw journal fields in the instruction sent to the
// model. The OUTPUT headers are the ones the extractor looks for.
func BuildPrompt(in model.Input) string {
	var b strings.Builder
	// The template only references string fields of a value we own; it
	// cannot fail at execution.
	_ = promptTmpl.Execute(&b, in)
	return b.String()
}
