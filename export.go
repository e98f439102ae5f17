package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(profilePath *string) *cobra.Command {
	var out, base string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static HTML",
		Long:  "Render one page per company filter and per project overlay into a directory that any static host can serve. The mobile menu and in-place updates are not available in the export.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.ErrOrStderr(), *profilePath)
			if err != nil {
				return err
			}

			res, err := e.site.Export(out, base)
			if err != nil {
				return err
			}
			e.logger.Info("export complete", "dir", out, "pages", len(res.Pages), "assets", len(res.Assets))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages and %d assets to %s\n", len(res.Pages), len(res.Assets), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (required)")
	cmd.Flags().StringVar(&base, "base", "/", "URL path the export will be served under")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
