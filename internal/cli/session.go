package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/journal"
	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/render"
	"github.com/rcliao/reflect-journal/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive journaling session",
		Long: "Read commands from stdin, one per line, against a single in-memory entry.\n\n" +
			replHelp,
		Run: runSession,
	}

	RootCmd.AddCommand(cmd)
}

const replHelp = `Commands:
  dates                   list dates with an entry
  open <date>             view a date and load its entry, if any
  today                   view today
  set <field> <text>      edit journal, intention, dream or priorities (\n for newline)
  show                    print the entry in view
  generate                generate and save insights for today
  help                    this text
  quit                    leave`

// sessionStore is what the interactive loop needs from storage.
type sessionStore interface {
	session.Loader
	ListDates(ctx context.Context) ([]string, error)
}

func runSession(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s, newGenerator(s)); err != nil {
		exitErr("session", err)
	}
}

// repl runs one session until quit or end of input. Command failures are
// reported and the loop continues; only a read error ends it with an error.
func repl(ctx context.Context, in io.Reader, out io.Writer, s sessionStore, gen *journal.Generator) error {
	st := &session.State{}
	prompt := color.New(color.FgCyan)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	fmt.Fprintf(out, "Today is %s. Type help for commands.\n", gen.Today())
	for {
		_, _ = prompt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		name, rest := splitCommand(scanner.Text())
		switch name {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, replHelp)
		case "dates":
			dates, err := s.ListDates(ctx)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			render.Dates(out, dates, gen.Today())
		case "open", "today":
			date := gen.Today()
			if name == "open" {
				d, err := model.ParseDate(rest)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				date = d
			}
			selectDate(ctx, out, st, s, date)
		case "set":
			field, text := splitCommand(rest)
			if err := st.SetField(field, strings.ReplaceAll(text, `\n`, "\n")); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "%s updated (not saved until generate)\n", strings.ToLower(field))
		case "show":
			showState(out, st)
		case "generate":
			res := gen.Generate(ctx, st, journal.Request{
				Today:      gen.Today(),
				ViewedDate: st.SelectedDate,
				Input:      st.Input(),
			})
			render.Outcome(out, res)
		default:
			fmt.Fprintf(out, "unknown command %q; type help\n", name)
		}
	}
}

func selectDate(ctx context.Context, out io.Writer, st *session.State, l session.Loader, date string) {
	already := date == st.LoadedDate
	loaded, err := st.SelectDate(ctx, l, date)
	switch {
	case err != nil:
		fmt.Fprintf(out, "error: %v\n", err)
	case loaded:
		fmt.Fprintf(out, "Loaded entry for %s\n", date)
	case already:
		fmt.Fprintf(out, "Viewing %s\n", date)
	default:
		fmt.Fprintf(out, "No entry for %s; current input kept\n", date)
	}
}

func showState(out io.Writer, st *session.State) {
	view := st.SelectedDate
	if view == "" {
		view = "(none)"
	}
	fmt.Fprintf(out, "viewing: %s  loaded: %s\n\n", view, st.LoadedDate)
	e := model.NewEntry(st.SelectedDate, st.Input(), st.Insights())
	render.Entry(out, &e)
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.ToLower(line), ""
}
