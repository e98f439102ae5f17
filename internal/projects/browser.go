package projects

import (
	"errors"
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pankaj139/portfolio/internal/profile"
)

var (
	// ErrUnknownCompany is returned when a filter names no company with projects.
	ErrUnknownCompany = errors.New("unknown company")
	// ErrProjectNotFound is returned when a project ID matches no project.
	ErrProjectNotFound = errors.New("project not found")
)

const (
	summaryKey        = "Showing %d of %d projects"
	summaryCompanyKey = "Showing %d of %d projects from %s"
)

func init() {
	message.Set(language.English, summaryKey,
		plural.Selectf(2, "%d",
			plural.One, "Showing %[1]d of %[2]d project",
			plural.Other, "Showing %[1]d of %[2]d projects"))
	message.Set(language.English, summaryCompanyKey,
		plural.Selectf(2, "%d",
			plural.One, "Showing %[1]d of %[2]d project from %[3]s",
			plural.Other, "Showing %[1]d of %[2]d projects from %[3]s"))
}

// Choice is one filter button.
type Choice struct {
	Company string
	// Count is the number of projects for the company; zero for All.
	Count  int
	Active bool
}

// Label is the button text, e.g. "Infoedge (5)".
func (c Choice) Label() string {
	if c.Company == All {
		return All
	}
	return fmt.Sprintf("%s (%d)", c.Company, c.Count)
}

// Browser holds the company filter for one page view.
type Browser struct {
	projects []profile.Project
	ranks    RankTable
	selected string
	onSelect func(profile.Project)
	printer  *message.Printer
}

// NewBrowser returns a browser showing all projects. onSelect is called by
// SelectProject and may be nil.
func NewBrowser(projects []profile.Project, ranks RankTable, onSelect func(profile.Project)) *Browser {
	return &Browser{
		projects: projects,
		ranks:    ranks,
		selected: All,
		onSelect: onSelect,
		printer:  message.NewPrinter(language.English),
	}
}

// Selected returns the active company filter.
func (b *Browser) Selected() string {
	return b.selected
}

// Select switches the filter. Companies without projects are rejected and
// the current selection is kept.
func (b *Browser) Select(company string) error {
	if company != All && Count(b.projects, company) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCompany, company)
	}
	b.selected = company
	return nil
}

// Choices returns the filter buttons in rank order, "All" first.
func (b *Browser) Choices() []Choice {
	companies := Companies(b.projects, b.ranks)
	choices := make([]Choice, 0, len(companies))
	for _, c := range companies {
		choice := Choice{Company: c, Active: c == b.selected}
		if c != All {
			choice.Count = Count(b.projects, c)
		}
		choices = append(choices, choice)
	}
	return choices
}

// Visible returns the projects for the current filter.
func (b *Browser) Visible() []profile.Project {
	return Filter(b.projects, b.ranks, b.selected)
}

// Total is the number of projects regardless of filter.
func (b *Browser) Total() int {
	return len(b.projects)
}

// Summary describes the visible range, e.g. "Showing 5 of 18 projects from Infoedge".
func (b *Browser) Summary() string {
	shown := len(b.Visible())
	if b.selected == All {
		return b.printer.Sprintf(summaryKey, shown, b.Total())
	}
	return b.printer.Sprintf(summaryCompanyKey, shown, b.Total(), b.selected)
}

// SelectProject hands the project with the given ID to the selection callback.
func (b *Browser) SelectProject(id string) (profile.Project, error) {
	for _, p := range b.projects {
		if p.ID == id {
			if b.onSelect != nil {
				b.onSelect(p)
			}
			return p, nil
		}
	}
	return profile.Project{}, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
}
