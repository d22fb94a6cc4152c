package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set at build time with -ldflags "-X github.com/rcliao/reflect-journal/internal/cli.buildVersion=...".
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	var (
		short  bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the reflect-journal version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, buildVersion, buildCommit, buildDate, output))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")

	RootCmd.AddCommand(cmd)
}
