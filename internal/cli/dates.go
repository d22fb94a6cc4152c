package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List dates that have an entry, most recent first",
		Run:   runDates,
	}

	RootCmd.AddCommand(cmd)
}

func runDates(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	dates, err := s.ListDates(cmd.Context())
	if err != nil {
		exitErr("dates", err)
	}

	if textFormat() {
		render.Dates(cmd.OutOrStdout(), dates, model.FormatDate(time.Now()))
		return
	}
	printJSON(cmd.OutOrStdout(), dates)
}
