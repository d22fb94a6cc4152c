// Package render prints entries and results as colored text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/rcliao/reflect-journal/internal/journal"
	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/store"
)

var (
	title   = color.New(color.Bold, color.Underline)
	heading = color.New(color.Bold)
	faint   = color.New(color.Faint, color.Italic)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed, color.Bold)
	dateCol = color.New(color.FgHiYellow)
)

func block(w io.Writer, label, text string) {
	_, _ = heading.Fprintln(w, label)
	if strings.TrimSpace(text) == "" {
		_, _ = faint.Fprintln(w, "  none")
	} else {
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintln(w, "  "+line)
		}
	}
	fmt.Fprintln(w)
}

// Insights prints the four derived sections.
func Insights(w io.Writer, ins model.Insights) {
	block(w, "🧘 Reflection", ins.Reflection)
	block(w, "🌙 Dream Interpretation", ins.DreamInterpretation)
	block(w, "🧠 Mindset Insight", ins.MindsetInsight)
	block(w, "🎯 Strategy", ins.Strategy)
}

// Entry prints one full entry.
func Entry(w io.Writer, e *model.Entry) {
	_, _ = title.Fprintf(w, "📝 %s\n", e.Date)
	fmt.Fprintln(w)
	block(w, "Journal Entry", e.Journal)
	block(w, "Intention", e.Intention)
	block(w, "Dream", e.Dream)
	block(w, "Top 3 Priorities", e.Priorities)
	Insights(w, e.Insights())
}

// Dates prints the known dates, marking today.
func Dates(w io.Writer, dates []string, today string) {
	_, _ = title.Fprintln(w, "📅 Entries")
	if len(dates) == 0 {
		_, _ = faint.Fprintln(w, " none")
		return
	}
	for _, d := range dates {
		if d == today {
			_, _ = dateCol.Fprintf(w, "%s  (today)\n", d)
			continue
		}
		fmt.Fprintln(w, d)
	}
}

// SearchResults prints a table of matches.
func SearchResults(w io.Writer, results []store.SearchResult) {
	if len(results) == 0 {
		_, _ = faint.Fprintln(w, "no matches")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow("DATE", "FIELDS", "JOURNAL")
	for _, r := range results {
		tbl.AddRow(r.Date, strings.Join(r.Fields, ","), firstLine(r.Journal))
	}
	fmt.Fprintln(w, tbl)
}

// Stats prints database statistics.
func Stats(w io.Writer, st *store.Stats) {
	tbl := uitable.New()
	tbl.AddRow("database:", st.DBPath)
	tbl.AddRow("size:", fmt.Sprintf("%d bytes", st.DBSizeBytes))
	tbl.AddRow("entries:", st.TotalEntries)
	tbl.AddRow("with insights:", st.WithInsights)
	tbl.AddRow("without insights:", st.WithoutInsights)
	if st.TotalEntries > 0 {
		tbl.AddRow("range:", st.FirstDate+" .. "+st.LastDate)
	}
	fmt.Fprintln(w, tbl)
}

// Outcome prints the result of a generation attempt.
func Outcome(w io.Writer, out journal.Outcome) {
	switch out.Status {
	case journal.StatusSuccess:
		_, _ = success.Fprintln(w, out.Message)
	case journal.StatusWarning:
		_, _ = warning.Fprintln(w, out.Message)
		return
	default:
		_, _ = failure.Fprintln(w, out.Message)
	}
	fmt.Fprintln(w)
	Insights(w, out.Insights)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
