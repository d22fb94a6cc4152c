// Package session holds the entry currently shown and edited by a user.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/store"
)

// Loader reads a stored entry by date.
type Loader interface {
	Load(ctx context.Context, date string) (*model.Entry, error)
}

// State is a transient copy of one entry. It is never written back on its
// own; values only become durable through a generation.
type State struct {
	Journal    string `json:"journal"`
	Intention  string `json:"intention"`
	Dream      string `json:"dream"`
	Priorities string `json:"priorities"`

	Reflection          string `json:"reflection"`
	DreamInterpretation string `json:"dream_interpretation"`
	MindsetInsight      string `json:"mindset_insight"`
	Strategy            string `json:"strategy"`

	// LoadedDate is the date whose stored values the fields reflect.
	LoadedDate string `json:"loaded_date,omitempty"`
	// SelectedDate is the date the user is viewing. It may have no entry.
	SelectedDate string `json:"selected_date,omitempty"`
}

// SelectDate records date as the viewed date and, if it differs from
// LoadedDate, loads its entry into the state. A date with no entry leaves
// the fields alone so unsaved input survives. Reports whether an entry was
// loaded.
func (s *State) SelectDate(ctx context.Context, l Loader, date string) (bool, error) {
	s.SelectedDate = date
	if date == "" || date == s.LoadedDate {
		return false, nil
	}

	e, err := l.Load(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", date, err)
	}

	s.setInput(e.Input())
	s.ApplyGenerated(e.Insights())
	s.LoadedDate = date
	return true, nil
}

// ApplyGenerated replaces the derived fields.
func (s *State) ApplyGenerated(ins model.Insights) {
	s.Reflection = ins.Reflection
	s.DreamInterpretation = ins.DreamInterpretation
	s.MindsetInsight = ins.MindsetInsight
	s.Strategy = ins.Strategy
}

// Input returns the raw fields.
func (s *State) Input() model.Input {
	return model.Input{
		Journal:    s.Journal,
		Intention:  s.Intention,
		Dream:      s.Dream,
		Priorities: s.Priorities,
	}
}

// Insights returns the derived fields.
func (s *State) Insights() model.Insights {
	return model.Insights{
		Reflection:          s.Reflection,
		DreamInterpretation: s.DreamInterpretation,
		MindsetInsight:      s.MindsetInsight,
		Strategy:            s.Strategy,
	}
}

// InputFields are the names accepted by SetField.
var InputFields = []string{"journal", "intention", "dream", "priorities"}

// SetField edits one raw field by name.
func (s *State) SetField(name, value string) error {
	switch strings.ToLower(name) {
	case "journal":
		s.Journal = value
	case "intention":
		s.Intention = value
	case "dream":
		s.Dream = value
	case "priorities":
		s.Priorities = value
	default:
		return fmt.Errorf("unknown field %q (valid: %s)", name, strings.Join(InputFields, ", "))
	}
	return nil
}

func (s *State) setInput(in model.Input) {
	s.Journal = in.Journal
	s.Intention = in.Intention
	s.Dream = in.Dream
	s.Priorities = in.Priorities
}
