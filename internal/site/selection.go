// Package site composes the portfolio page and serves it over HTTP.
package site

import (
	"net/url"
	"strings"

	"github.com/pankaj139/portfolio/internal/projects"
)

// Query parameters carrying the page state.
const (
	paramCompany = "company"
	paramProject = "project"
	paramMenu    = "menu"
	menuOpen     = "open"
)

// Selection is the per-view UI state: active company filter, project shown
// in the overlay, and whether the mobile menu is open. It lives only in the
// URL and is never stored.
type Selection struct {
	Company   string
	ProjectID string
	MenuOpen  bool
}

// DefaultSelection shows all projects with nothing open.
func DefaultSelection() Selection {
	return Selection{Company: projects.All}
}

// ParseSelection reads a selection from query parameters. Missing values
// fall back to DefaultSelection.
func ParseSelection(q url.Values) Selection {
	sel := DefaultSelection()
	if c := strings.TrimSpace(q.Get(paramCompany)); c != "" {
		sel.Company = c
	}
	sel.ProjectID = strings.TrimSpace(q.Get(paramProject))
	sel.MenuOpen = q.Get(paramMenu) == menuOpen
	return sel
}

// Query encodes the selection, omitting default values.
func (s Selection) Query() url.Values {
	q := url.Values{}
	if s.Company != "" && s.Company != projects.All {
		q.Set(paramCompany, s.Company)
	}
	if s.ProjectID != "" {
		q.Set(paramProject, s.ProjectID)
	}
	if s.MenuOpen {
		q.Set(paramMenu, menuOpen)
	}
	return q
}

// WithCompany switches the filter and closes the overlay and menu.
func (s Selection) WithCompany(company string) Selection {
	return Selection{Company: company}
}

// WithProject opens the overlay for id, keeping the filter.
func (s Selection) WithProject(id string) Selection {
	s.ProjectID = id
	s.MenuOpen = false
	return s
}

// CloseOverlay clears the selected project.
func (s Selection) CloseOverlay() Selection {
	s.ProjectID = ""
	return s
}

// WithMenu sets the mobile menu state.
func (s Selection) WithMenu(open bool) Selection {
	s.MenuOpen = open
	return s
}
