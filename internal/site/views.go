package site

import (
	"github.com/pankaj139/portfolio/internal/profile"
	"github.com/pankaj139/portfolio/internal/projects"
	"github.com/pankaj139/portfolio/internal/sections"
)

// NavLink is a mobile menu entry. Following it closes the menu.
type NavLink struct {
	Label string
	Href  string
}

// HeaderView is sections.Header plus the URLs its controls point at.
// OOB marks a header sent alongside another fragment to replace the one
// on the page.
type HeaderView struct {
	sections.Header
	ToggleHref     string
	ToggleFragment string
	Links          []NavLink
	OOB            bool
}

func headerView(h sections.Header, sel Selection, l Linker) HeaderView {
	sel.MenuOpen = h.MenuOpen

	toggled := h
	toggled.Toggle()
	toggleSel := sel.WithMenu(toggled.MenuOpen)

	v := HeaderView{
		Header:         h,
		ToggleHref:     l.Page(toggleSel),
		ToggleFragment: l.Fragment(FragmentNav, toggleSel),
	}
	// Navigating scrolls the page, so it keeps the filter but not the overlay.
	page := sel.CloseOverlay()
	for _, item := range h.Items {
		nav := h
		anchor := nav.Navigate(item.ID)
		v.Links = append(v.Links, NavLink{
			Label: item.Label,
			Href:  l.Page(page.WithMenu(nav.MenuOpen)) + anchor,
		})
	}
	return v
}

// ChoiceView is a filter button.
type ChoiceView struct {
	projects.Choice
	Href     string
	Fragment string
}

// CardView is a project card in the grid.
type CardView struct {
	profile.Project
	Href     string
	Fragment string
}

// ProjectsView is the data for the "projects" template.
type ProjectsView struct {
	Selected string
	Choices  []ChoiceView
	Cards    []CardView
	Summary  string
}

func projectsView(b *projects.Browser, sel Selection, l Linker) ProjectsView {
	sel.Company = b.Selected()

	v := ProjectsView{Selected: b.Selected(), Summary: b.Summary()}
	for _, c := range b.Choices() {
		target := sel.WithCompany(c.Company)
		v.Choices = append(v.Choices, ChoiceView{
			Choice:   c,
			Href:     l.Page(target) + "#projects",
			Fragment: l.Fragment(FragmentProjects, target),
		})
	}
	for _, p := range b.Visible() {
		target := sel.WithProject(p.ID)
		v.Cards = append(v.Cards, CardView{
			Project:  p,
			Href:     l.Page(target),
			Fragment: l.Fragment(FragmentProject, target),
		})
	}
	return v
}

// OverlayView is the data for the "overlay" template.
type OverlayView struct {
	sections.Overlay
	CloseHref     string
	CloseFragment string
}

func overlayView(o sections.Overlay, sel Selection, l Linker) OverlayView {
	closed := sel.CloseOverlay()
	return OverlayView{
		Overlay:       o,
		CloseHref:     l.Page(closed) + "#projects",
		CloseFragment: l.Fragment(FragmentOverlay, closed),
	}
}

// ProjectsFragment is the projects section swapped in by a filter change,
// with the header refreshed to the new filter.
type ProjectsFragment struct {
	Projects ProjectsView
	Header   HeaderView
}

// OverlayFragment is the overlay swapped in when a project is opened or
// closed, with the header refreshed to match.
type OverlayFragment struct {
	Overlay OverlayView
	Header  HeaderView
}
