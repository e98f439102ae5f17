package sections

import "github.com/pankaj139/portfolio/internal/profile"

// Overlay is the project detail dialog. A zero Overlay renders nothing.
type Overlay struct {
	Open    bool
	Project profile.Project
}

// NewOverlay shows p, or nothing when p is nil.
func NewOverlay(p *profile.Project) Overlay {
	if p == nil {
		return Overlay{}
	}
	return Overlay{Open: true, Project: *p}
}

// HasTechStack reports whether the technology list should be shown.
func (o Overlay) HasTechStack() bool {
	return o.Open && len(o.Project.TechStack) > 0
}
