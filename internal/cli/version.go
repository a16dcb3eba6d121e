package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(
				opts.Stdout,
				"detect-indent version=%s commit=%s build_date=%s\n",
				orDefault(opts.BuildInfo.Version, "dev"),
				orDefault(opts.BuildInfo.Commit, "unknown"),
				orDefault(strings.TrimSpace(opts.BuildInfo.BuildDate), "unknown"),
			)
			return err
		},
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
