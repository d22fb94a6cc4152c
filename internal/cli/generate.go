package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/journal"
	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/render"
	"github.com/rcliao/reflect-journal/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and save insights for today's entry",
		Long: "Send today's journal, intention, dream and priorities to the model, extract the four " +
			"insight sections and save the entry. Input comes from flags or a JSON file (- for stdin).",
		Run: runGenerate,
	}

	cmd.Flags().StringP("journal", "j", "", "Morning journal")
	cmd.Flags().StringP("intention", "i", "", "Intention for the day")
	cmd.Flags().String("dream", "", "Dream from last night")
	cmd.Flags().StringP("priorities", "p", "", "Top 3 priorities")
	cmd.Flags().String("from-file", "", `JSON input file with journal/intention/dream/priorities ("-" for stdin)`)
	cmd.Flags().String("view-date", "", "Date currently being viewed; generation is refused unless it is today")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	fromFile, _ := cmd.Flags().GetString("from-file")
	viewDate, _ := cmd.Flags().GetString("view-date")

	var in model.Input
	if fromFile != "" {
		var data []byte
		var err error
		if fromFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(fromFile)
		}
		if err != nil {
			exitErr("read input", err)
		}
		if err := json.Unmarshal(data, &in); err != nil {
			exitErr("parse input", err)
		}
	}
	// Flags override file values.
	for name, dst := range map[string]*string{
		"journal":    &in.Journal,
		"intention":  &in.Intention,
		"dream":      &in.Dream,
		"priorities": &in.Priorities,
	} {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}

	if viewDate != "" {
		d, err := model.ParseDate(viewDate)
		if err != nil {
			exitErr("view-date", err)
		}
		viewDate = d
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	gen := newGenerator(s)
	out := gen.Generate(cmd.Context(), &session.State{}, journal.Request{
		Today:      gen.Today(),
		ViewedDate: viewDate,
		Input:      in,
	})

	switch {
	case !textFormat():
		printJSON(cmd.OutOrStdout(), out)
	case out.Status == journal.StatusWarning:
		render.Outcome(cmd.ErrOrStderr(), out)
	default:
		render.Outcome(cmd.OutOrStdout(), out)
	}

	if out.Status == journal.StatusError {
		s.Close()
		os.Exit(1)
	}
}
