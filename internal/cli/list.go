package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/model"
	"github.com/rcliao/reflect-journal/internal/render"
	"github.com/rcliao/reflect-journal/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Run:   runList,
	}

	cmd.Flags().String("since", "", "Earliest date (inclusive)")
	cmd.Flags().String("until", "", "Latest date (inclusive)")
	cmd.Flags().IntP("limit", "l", 30, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	since, _ := cmd.Flags().GetString("since")
	until, _ := cmd.Flags().GetString("until")
	limit, _ := cmd.Flags().GetInt("limit")

	for _, d := range []*string{&since, &until} {
		if *d == "" {
			continue
		}
		parsed, err := model.ParseDate(*d)
		if err != nil {
			exitErr("list", err)
		}
		*d = parsed
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.List(cmd.Context(), store.ListParams{
		Since: since,
		Until: until,
		Limit: limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if textFormat() {
		for i := range entries {
			render.Entry(cmd.OutOrStdout(), &entries[i])
		}
		return
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	printJSON(cmd.OutOrStdout(), entries)
}
