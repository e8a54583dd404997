package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release time
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sitegen version %s\n", version)
			fmt.Fprintf(out, "  Commit:    %s\n", gitCommit)
			fmt.Fprintf(out, "  Built:     %s\n", buildDate)
			fmt.Fprintf(out, "  Go:        %s\n", runtime.Version())
			return nil
		},
	}
}
