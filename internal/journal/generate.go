// Package journal coordinates insight generation for the day's entry: it
// calls the model, extracts the sections, updates the session and saves the
// entry.
package journal

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/rcliao/reflect-journal/internal/extract"
	"github.com/rcliao/reflect-journal/internal/llm"
	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/session"
)

// Status classifies an Outcome for the user.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// MsgTodayOnly is the warning shown when generation is attempted while
// another day is being viewed.
const MsgTodayOnly = "You can only generate or modify insights for today's entry."

// Saver persists an entry.
type Saver interface {
	Upsert(ctx context.Context, e model.Entry) (*model.Entry, error)
}

// Request is one press of "generate".
type Request struct {
	Today      string // defaults to the generator's clock
	ViewedDate string // date selected for viewing; empty if none
	Input      model.Input
}

// Outcome is what the user sees after a generation attempt. Generate never
// returns an error; every failure is folded into an Outcome.
type Outcome struct {
	Status   Status           `json:"status"`
	Message  string           `json:"message"`
	Date     string           `json:"date,omitempty"`
	Insights model.Insights   `json:"insights"`
	Strategy extract.Strategy `json:"parse_strategy,omitempty"`
	Entry    *model.Entry     `json:"entry,omitempty"`
	Saved    bool             `json:"saved"`
}

// Generator runs generations against a store and a model client.
type Generator struct {
	store  Saver
	client llm.Client
	now    func() time.Time
	log    *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator creates a Generator.
func NewGenerator(s Saver, c llm.Client, opts ...Option) *Generator {
	g := &Generator{
		store:  s,
		client: c,
		now:    time.Now,
		log:    log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Today returns the current calendar date in local time.
func (g *Generator) Today() string {
	return model.FormatDate(g.now())
}

// Generate produces and saves insights for today's entry.
//
// Only today's entry may be generated: if another date is being viewed the
// request is refused before anything happens. A failed model call still
// saves the raw input with empty insights. The input saved is req.Input as
// passed in, never re-read from st.
func (g *Generator) Generate(ctx context.Context, st *session.State, req Request) Outcome {
	today := req.Today
	if today == "" {
		today = g.Today()
	}

	if req.ViewedDate != "" && req.ViewedDate != today {
		g.log.Printf("generate refused: viewing %s, today is %s", req.ViewedDate, today)
		return Outcome{Status: StatusWarning, Message: MsgTodayOnly, Date: req.ViewedDate}
	}

	out := Outcome{Status: StatusSuccess, Date: today}

	start := time.Now()
	text, callErr := g.client.Complete(ctx, llm.BuildPrompt(req.Input))
	if callErr != nil {
		g.log.Printf("model call failed after %s: %v", time.Since(start).Round(time.Millisecond), callErr)
		out.Status = StatusError
		out.Message = fmt.Sprintf("Error generating response from AI: %v", callErr)
	} else {
		res := extract.Parse(text)
		out.Insights = res.Insights
		out.Strategy = res.Strategy
		g.log.Printf("model responded in %s; parsed with %s strategy, sections found %v",
			time.Since(start).Round(time.Millisecond), res.Strategy, res.Found)
	}

	if st != nil {
		st.ApplyGenerated(out.Insights)
	}

	saved, err := g.store.Upsert(ctx, model.NewEntry(today, req.Input, out.Insights))
	if err != nil {
		g.log.Printf("save %s failed: %v", today, err)
		out.Status = StatusError
		if out.Message != "" {
			out.Message += "; "
		}
		out.Message += fmt.Sprintf("Entry for %s was not saved: %v", today, err)
		return out
	}

	out.Entry = saved
	out.Saved = true
	if callErr != nil {
		out.Message += fmt.Sprintf("; entry for %s saved without insights", today)
	} else {
		out.Message = fmt.Sprintf("Entry for %s saved successfully!", today)
	}
	return out
}
