// Package main is the portfolio command: it serves the site, exports it as
// static files, or prints the project list.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var profilePath string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		Long:          "Serves a single-page portfolio rendered from a profile file, with a filterable project list and case-study overlays.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profilePath, "profile", "", "Profile YAML or JSON file (overrides PROFILE_PATH)")

	root.AddCommand(
		newServeCmd(&profilePath),
		newExportCmd(&profilePath),
		newProjectsCmd(&profilePath),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
