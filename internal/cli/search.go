package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/render"
	"github.com/rcliao/reflect-journal/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search entries by keyword",
		Long:  "Search the journal, intention, dream, priorities and insight text of every entry.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if textFormat() {
		render.SearchResults(cmd.OutOrStdout(), results)
		return
	}
	printJSON(cmd.OutOrStdout(), results)
}
