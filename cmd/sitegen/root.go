package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the sitegen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sitegen",
		Short:         "Static site generator for builder projects",
		Long:          `sitegen turns a visual builder project snapshot into a self-contained static site.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewTreeCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
