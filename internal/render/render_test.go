package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/reflect-journal/internal/journal"
	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/store"
)

func init() {
	color.NoColor = true
}

func TestEntry(t *testing.T) {
	var buf bytes.Buffer
	e := model.NewEntry("2026-10-18",
		model.Input{Journal: "Slept poorly", Priorities: "Work\nRest"},
		model.Insights{Reflection: "Felt tired.", Strategy: "Rest at noon."})

	Entry(&buf, &e)
	out := buf.String()
	require.Contains(t, out, "2026-10-18")
	require.Contains(t, out, "  Slept poorly")
	require.Contains(t, out, "  Work\n  Rest")
	require.Contains(t, out, "🧘 Reflection\n  Felt tired.")
	require.Contains(t, out, "🌙 Dream Interpretation\n  none")
	require.Contains(t, out, "🎯 Strategy\n  Rest at noon.")
}

func TestDates(t *testing.T) {
	var buf bytes.Buffer
	Dates(&buf, []string{"2026-10-18", "2026-10-17"}, "2026-10-18")
	require.Contains(t, buf.String(), "2026-10-18  (today)")
	require.Contains(t, buf.String(), "2026-10-17\n")

	buf.Reset()
	Dates(&buf, nil, "2026-10-18")
	require.Contains(t, buf.String(), "none")
}

func TestOutcome(t *testing.T) {
	var buf bytes.Buffer
	Outcome(&buf, journal.Outcome{Status: journal.StatusWarning, Message: journal.MsgTodayOnly})
	require.Equal(t, journal.MsgTodayOnly+"\n", buf.String())

	buf.Reset()
	Outcome(&buf, journal.Outcome{Status: journal.StatusSuccess, Message: "saved",
		Insights: model.Insights{MindsetInsight: "Low energy."}})
	require.True(t, strings.HasPrefix(buf.String(), "saved\n"))
	require.Contains(t, buf.String(), "🧠 Mindset Insight\n  Low energy.")
}

func TestSearchResultsAndStats(t *testing.T) {
	var buf bytes.Buffer
	SearchResults(&buf, nil)
	require.Contains(t, buf.String(), "no matches")

	buf.Reset()
	SearchResults(&buf, []store.SearchResult{{
		Entry:  model.Entry{Date: "2026-10-18", Journal: "first line\nsecond"},
		Fields: []string{"journal", "dream"},
	}})
	require.Contains(t, buf.String(), "2026-10-18")
	require.Contains(t, buf.String(), "journal,dream")
	require.NotContains(t, buf.String(), "second")

	buf.Reset()
	Stats(&buf, &store.Stats{DBPath: "/tmp/x.db", TotalEntries: 2, WithInsights: 1, WithoutInsights: 1,
		FirstDate: "2026-10-16", LastDate: "2026-10-18"})
	require.Contains(t, buf.String(), "2026-10-16 .. 2026-10-18")
}
