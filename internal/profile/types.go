// Package profile holds the resume content rendered by the portfolio site.
package profile

import "strings"

// Profile is the root record describing the person behind the site.
// It is built once at startup and never mutated afterwards.
type Profile struct {
	Name           string       `json:"name" yaml:"name" validate:"required"`
	Title          string       `json:"title" yaml:"title" validate:"required"`
	HeroTitle      string       `json:"hero_title" yaml:"hero_title"`
	HeroSubtitle   string       `json:"hero_subtitle" yaml:"hero_subtitle"`
	Location       string       `json:"location" yaml:"location"`
	Contact        Contact      `json:"contact" yaml:"contact"`
	Summary        string       `json:"summary" yaml:"summary" validate:"required"`
	Highlights     []string     `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Experiences    []Experience `json:"experiences" yaml:"experiences" validate:"dive"`
	Projects       []Project    `json:"projects" yaml:"projects" validate:"dive"`
	Skills         []SkillGroup `json:"skills" yaml:"skills" validate:"dive"`
	Education      Education    `json:"education" yaml:"education"`
	Certifications []string     `json:"certifications,omitempty" yaml:"certifications,omitempty"`

	// CompanyRanks orders employers chronologically, earliest lowest.
	// Keys must match Project.Company exactly.
	CompanyRanks map[string]int `json:"company_ranks,omitempty" yaml:"company_ranks,omitempty" validate:"dive,gte=0"`
}

// Contact is the public contact block shown in the hero section.
type Contact struct {
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
}

// Experience is one position in the work history.
type Experience struct {
	Company  string   `json:"company" yaml:"company" validate:"required"`
	Role     string   `json:"role" yaml:"role" validate:"required"`
	Period   string   `json:"period" yaml:"period"`
	Location string   `json:"location" yaml:"location"`
	Points   []string `json:"points" yaml:"points"`
}

// Project is a single case study tied to one employer.
type Project struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Company     string   `json:"company" yaml:"company" validate:"required"`
	ResumePoint string   `json:"resume_point" yaml:"resume_point"`
	Problem     string   `json:"problem" yaml:"problem"`
	Challenges  []string `json:"challenges" yaml:"challenges"`
	Actions     []string `json:"actions" yaml:"actions"`
	Results     []string `json:"results" yaml:"results"`
	TechStack   []string `json:"tech_stack,omitempty" yaml:"tech_stack,omitempty"`
}

// SkillGroup is one category of skills. Groups keep their declaration order.
type SkillGroup struct {
	Category string   `json:"category" yaml:"category" validate:"required"`
	Skills   []string `json:"skills" yaml:"skills"`
}

// DisplayName turns a category key such as "Cloud_AWS" into "Cloud & AWS".
func (g SkillGroup) DisplayName() string {
	return strings.ReplaceAll(g.Category, "_", " & ")
}

// Education is the degree shown next to the certifications.
type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Period      string `json:"period" yaml:"period"`
	Location    string `json:"location" yaml:"location"`
}
