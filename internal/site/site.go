package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"time"

	"github.com/pankaj139/portfolio/internal/profile"
	"github.com/pankaj139/portfolio/internal/projects"
	"github.com/pankaj139/portfolio/internal/sections"
	"github.com/pankaj139/portfolio/internal/seo"
	"github.com/pankaj139/portfolio/internal/web"
)

// Site is the root composer. It holds the immutable profile, the page
// metadata derived from it at construction, and the parsed templates.
// A Site is safe for concurrent use: every page view builds its own state.
type Site struct {
	profile *profile.Profile
	ranks   projects.RankTable
	meta    seo.Metadata
	head    seo.Metadata
	tmpl    *template.Template
	now     func() time.Time
	logger  *slog.Logger

	hero       sections.Hero
	about      sections.About
	experience sections.Experience
	skills     sections.Skills
	education  sections.Education
}

// Option customises a Site.
type Option func(*Site)

// WithClock sets the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// WithLogger sets the logger used for ignored selections.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) { s.logger = l }
}

// New builds a Site for p. Page metadata is computed here, once.
func New(p *profile.Profile, opts ...Option) (*Site, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Site{
		profile:    p,
		ranks:      projects.RankTable(p.CompanyRanks),
		meta:       seo.FromProfile(p),
		head:       seo.Defaults(p),
		tmpl:       tmpl,
		now:        time.Now,
		logger:     slog.Default(),
		hero:       sections.NewHero(p),
		about:      sections.NewAbout(p),
		experience: sections.NewExperience(p),
		skills:     sections.NewSkills(p),
		education:  sections.NewEducation(p),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Profile returns the profile being rendered.
func (s *Site) Profile() *profile.Profile {
	return s.profile
}

// Templates exposes the parsed templates for fragment rendering.
func (s *Site) Templates() *template.Template {
	return s.tmpl
}

// Page is the data for the "page" template.
type Page struct {
	Head       seo.Metadata
	Stylesheet string
	Header     HeaderView
	Hero       sections.Hero
	About      sections.About
	Experience sections.Experience
	Projects   ProjectsView
	Skills     sections.Skills
	Education  sections.Education
	Footer     sections.Footer
	Overlay    OverlayView
}

// Compose builds the page for sel. Filters and project IDs that do not
// exist are dropped with a warning; the returned Selection is the state
// actually shown.
func (s *Site) Compose(sel Selection, l Linker) (Page, Selection) {
	var selected *profile.Project
	browser := projects.NewBrowser(s.profile.Projects, s.ranks, func(p profile.Project) {
		selected = &p
	})

	if err := browser.Select(sel.Company); err != nil {
		s.logger.Warn("ignoring company filter", "company", sel.Company, "error", err)
		sel.Company = projects.All
	}
	if sel.ProjectID != "" {
		if _, err := browser.SelectProject(sel.ProjectID); err != nil {
			s.logger.Warn("ignoring project selection", "project", sel.ProjectID, "error", err)
			sel.ProjectID = ""
		}
	}

	page := Page{
		Head:       s.head,
		Stylesheet: l.Asset("site.css"),
		Header:     s.header(sel, l),
		Hero:       s.hero,
		About:      s.about,
		Experience: s.experience,
		Projects:   projectsView(browser, sel, l),
		Skills:     s.skills,
		Education:  s.education,
		Footer:     sections.NewFooter(s.profile, s.now()),
		Overlay:    overlayView(sections.NewOverlay(selected), sel, l),
	}
	return page, sel
}

// Render writes the full HTML document for sel with the page metadata applied.
func (s *Site) Render(w io.Writer, sel Selection, l Linker) error {
	page, _ := s.Compose(sel, l)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	out, err := seo.Rewrite(buf.Bytes(), s.meta)
	if err != nil {
		return fmt.Errorf("failed to apply page metadata: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// ProjectsFor returns the projects section for a company filter. Unlike
// Compose it rejects unknown companies. The overlay and menu are closed.
func (s *Site) ProjectsFor(sel Selection, l Linker) (ProjectsFragment, error) {
	browser := projects.NewBrowser(s.profile.Projects, s.ranks, nil)
	if err := browser.Select(sel.Company); err != nil {
		return ProjectsFragment{}, err
	}
	shown := sel.WithCompany(browser.Selected())
	return ProjectsFragment{
		Projects: projectsView(browser, shown, l),
		Header:   s.oobHeader(shown, l),
	}, nil
}

// OverlayFor returns the overlay for sel.ProjectID, or a closed overlay when
// none is selected. Unknown projects are an error; an unknown company falls
// back to All.
func (s *Site) OverlayFor(sel Selection, l Linker) (OverlayFragment, error) {
	var selected *profile.Project
	browser := projects.NewBrowser(s.profile.Projects, s.ranks, func(p profile.Project) {
		selected = &p
	})
	if err := browser.Select(sel.Company); err != nil {
		sel.Company = projects.All
	}
	sel.MenuOpen = false

	if sel.ProjectID != "" {
		if _, err := browser.SelectProject(sel.ProjectID); err != nil {
			return OverlayFragment{}, err
		}
	}
	return OverlayFragment{
		Overlay: overlayView(sections.NewOverlay(selected), sel, l),
		Header:  s.oobHeader(sel, l),
	}, nil
}

// HeaderFor returns the header with the menu state of sel.
func (s *Site) HeaderFor(sel Selection, l Linker) HeaderView {
	return s.header(sel, l)
}

func (s *Site) oobHeader(sel Selection, l Linker) HeaderView {
	h := s.header(sel, l)
	h.OOB = true
	return h
}

func (s *Site) header(sel Selection, l Linker) HeaderView {
	h := sections.NewHeader(s.profile)
	if sel.MenuOpen {
		h.Toggle()
	}
	return headerView(h, sel, l)
}
