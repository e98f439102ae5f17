// Package sections builds the view models for each part of the portfolio page.
// Every constructor is a pure function of the profile.
package sections

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/pankaj139/portfolio/internal/profile"
)

// NavItem is a link in the header navigation.
type NavItem struct {
	ID    string
	Label string
}

// Nav lists the sections reachable from the header, in page order.
var Nav = []NavItem{
	{ID: "about", Label: "About"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
}

// Header is the sticky navigation bar. MenuOpen controls the mobile menu.
type Header struct {
	Name     string
	Items    []NavItem
	MenuOpen bool
}

// NewHeader returns a header with the mobile menu closed.
func NewHeader(p *profile.Profile) Header {
	return Header{Name: p.Name, Items: Nav}
}

// Toggle flips the mobile menu.
func (h *Header) Toggle() {
	h.MenuOpen = !h.MenuOpen
}

// Navigate closes the menu and returns the anchor for section id.
// Unknown sections leave the menu as it was and return "".
func (h *Header) Navigate(id string) string {
	for _, item := range h.Items {
		if item.ID == id {
			h.MenuOpen = false
			return "#" + id
		}
	}
	return ""
}

// ContactLink is one call-to-action in the hero section. Href is built
// here with a fixed scheme, so it is marked safe for tel: links.
type ContactLink struct {
	Kind     string
	Label    string
	Href     template.URL
	External bool
}

// Hero is the headline section.
type Hero struct {
	Title    string
	Subtitle string
	Links    []ContactLink
}

// NewHero builds the hero section; contact links are omitted when empty.
func NewHero(p *profile.Profile) Hero {
	h := Hero{Title: p.HeroTitle, Subtitle: p.HeroSubtitle}
	if h.Title == "" {
		h.Title = p.Title
	}
	if c := p.Contact; c.Email != "" {
		h.Links = append(h.Links, ContactLink{Kind: "mail", Label: c.Email, Href: template.URL("mailto:" + c.Email)})
	}
	if c := p.Contact; c.Phone != "" {
		h.Links = append(h.Links, ContactLink{Kind: "phone", Label: c.Phone, Href: template.URL("tel:" + strings.ReplaceAll(c.Phone, " ", ""))})
	}
	if c := p.Contact; c.LinkedIn != "" {
		h.Links = append(h.Links, ContactLink{Kind: "linkedin", Label: "LinkedIn", Href: template.URL("https://" + c.LinkedIn), External: true})
	}
	return h
}

// About is the biography section.
type About struct {
	Summary    string
	Highlights []string
}

func NewAbout(p *profile.Profile) About {
	return About{Summary: p.Summary, Highlights: p.Highlights}
}

// Experience is the work history timeline.
type Experience struct {
	Entries []profile.Experience
}

func NewExperience(p *profile.Profile) Experience {
	return Experience{Entries: p.Experiences}
}

// SkillCategory is a skill group ready for display.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Skills is the technical skills section.
type Skills struct {
	Categories []SkillCategory
}

func NewSkills(p *profile.Profile) Skills {
	s := Skills{Categories: make([]SkillCategory, 0, len(p.Skills))}
	for _, g := range p.Skills {
		s.Categories = append(s.Categories, SkillCategory{Name: g.DisplayName(), Skills: g.Skills})
	}
	return s
}

// Education is the degree and certifications section.
type Education struct {
	Degree         string
	Institution    string
	Details        string
	Certifications []string
}

func NewEducation(p *profile.Profile) Education {
	e := p.Education
	details := e.Period
	if e.Location != "" {
		if details != "" {
			details += " | "
		}
		details += e.Location
	}
	return Education{
		Degree:         e.Degree,
		Institution:    e.Institution,
		Details:        details,
		Certifications: p.Certifications,
	}
}

// Footer is the copyright line.
type Footer struct {
	Notice string
}

// NewFooter stamps the notice with the year of now.
func NewFooter(p *profile.Profile, now time.Time) Footer {
	return Footer{Notice: fmt.Sprintf("© %d %s. All Rights Reserved.", now.Year(), p.Name)}
}
