package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries as JSON",
		Long:  "Export every entry, oldest first, as a JSON array that import accepts.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	printJSON(cmd.OutOrStdout(), entries)
}
