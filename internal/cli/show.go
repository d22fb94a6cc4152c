package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/render"
	"github.com/rcliao/reflect-journal/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show the entry for a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	date := model.FormatDate(time.Now())
	if len(args) > 0 {
		d, err := model.ParseDate(args[0])
		if err != nil {
			exitErr("show", err)
		}
		date = d
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Load(cmd.Context(), date)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "no entry for %s\n", date)
		s.Close()
		os.Exit(1)
	}
	if err != nil {
		exitErr("show", err)
	}

	if textFormat() {
		render.Entry(cmd.OutOrStdout(), e)
		return
	}
	printJSON(cmd.OutOrStdout(), e)
}
