package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pankaj139/portfolio/internal/projects"
)

func newProjectsCmd(profilePath *string) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects in display order",
		Long:  "Print the company filters and the projects shown for one of them, ordered the same way as on the page.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.ErrOrStderr(), *profilePath)
			if err != nil {
				return err
			}

			p := e.site.Profile()
			b := projects.NewBrowser(p.Projects, projects.RankTable(p.CompanyRanks), nil)
			if err := b.Select(company); err != nil {
				return err
			}
			return printProjects(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", projects.All, "Company filter")
	return cmd
}

func printProjects(w io.Writer, b *projects.Browser) error {
	fmt.Fprint(w, "Filters:")
	for _, c := range b.Choices() {
		marker := ""
		if c.Active {
			marker = "*"
		}
		fmt.Fprintf(w, " [%s%s]", c.Label(), marker)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE")
	for _, p := range b.Visible() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Company, p.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, b.Summary())
	return err
}
