// Package model defines the core journal data types.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date form used as the entry key.
const DateLayout = "2006-01-02"

// Entry is one date's full journal record: the raw user input plus the
// insights derived from the model response.
type Entry struct {
	ID   string `json:"id"`
	Date string `json:"date"`

	Journal    string `json:"journal"`
	Intention  string `json:"intention"`
	Dream      string `json:"dream"`
	Priorities string `json:"priorities"`

	Reflection          string `json:"reflection"`
	DreamInterpretation string `json:"dream_interpretation"`
	MindsetInsight      string `json:"mindset_insight"`
	Strategy            string `json:"strategy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input holds the four user-authored fields.
type Input struct {
	Journal    string `json:"journal"`
	Intention  string `json:"intention"`
	Dream      string `json:"dream"`
	Priorities string `json:"priorities"`
}

// Insights holds the four sections extracted from a model response.
type Insights struct {
	Reflection          string `json:"reflection"`
	DreamInterpretation string `json:"dream_interpretation"`
	MindsetInsight      string `json:"mindset_insight"`
	Strategy            string `json:"day_strategy"`
}

// Section keys, in the order the model is asked to produce them.
const (
	KeyReflection          = "reflection"
	KeyDreamInterpretation = "dream_interpretation"
	KeyMindsetInsight      = "mindset_insight"
	KeyDayStrategy         = "day_strategy"
)

// Map returns the insights keyed by section name. All four keys are always
// present.
func (in Insights) Map() map[string]string {
	return map[string]string{
		KeyReflection:          in.Reflection,
		KeyDreamInterpretation: in.DreamInterpretation,
		KeyMindsetInsight:      in.MindsetInsight,
		KeyDayStrategy:         in.Strategy,
	}
}

// IsZero reports whether every section is empty.
func (in Insights) IsZero() bool {
	return in == Insights{}
}

// NewEntry composes an entry for date from raw input and derived insights.
func NewEntry(date string, in Input, ins Insights) Entry {
	return Entry{
		Date:                date,
		Journal:             in.Journal,
		Intention:           in.Intention,
		Dream:               in.Dream,
		Priorities:          in.Priorities,
		Reflection:          ins.Reflection,
		DreamInterpretation: ins.DreamInterpretation,
		MindsetInsight:      ins.MindsetInsight,
		Strategy:            ins.Strategy,
	}
}

// Input returns the raw fields of the entry.
func (e Entry) Input() Input {
	return Input{
		Journal:    e.Journal,
		Intention:  e.Intention,
		Dream:      e.Dream,
		Priorities: e.Priorities,
	}
}

// Insights returns the derived fields of the entry.
func (e Entry) Insights() Insights {
	return Insights{
		Reflection:          e.Reflection,
		DreamInterpretation: e.DreamInterpretation,
		MindsetInsight:      e.MindsetInsight,
		Strategy:            e.Strategy,
	}
}

// FormatDate renders t as an entry key in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate validates s as a calendar date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t.Format(DateLayout), nil
}
