package site

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gosimple/slug"

	"github.com/pankaj139/portfolio/internal/profile"
	"github.com/pankaj139/portfolio/internal/projects"
)

// Fragment names a partial that HTMX can swap into the page.
type Fragment int

const (
	FragmentProjects Fragment = iota
	FragmentProject
	FragmentOverlay
	FragmentNav
)

// Linker builds the URLs embedded in a rendered page.
type Linker interface {
	// Page is the full-page URL showing sel.
	Page(sel Selection) string
	// Fragment is the partial URL for f, or "" when partials are unavailable.
	Fragment(f Fragment, sel Selection) string
	// Asset is the URL of a file under /static.
	Asset(name string) string
}

// QueryLinker encodes state in query strings for the live server.
type QueryLinker struct{}

func (QueryLinker) Page(sel Selection) string {
	return withQuery("/", sel)
}

func (QueryLinker) Fragment(f Fragment, sel Selection) string {
	switch f {
	case FragmentProjects:
		return withQuery("/fragments/projects", Selection{Company: sel.Company})
	case FragmentProject:
		return withQuery("/fragments/projects/"+url.PathEscape(sel.ProjectID), Selection{Company: sel.Company})
	case FragmentOverlay:
		return withQuery("/fragments/overlay", Selection{Company: sel.Company})
	case FragmentNav:
		return withQuery("/fragments/nav", sel)
	default:
		return ""
	}
}

func (QueryLinker) Asset(name string) string {
	return "/static/" + name
}

func withQuery(p string, sel Selection) string {
	if q := sel.Query().Encode(); q != "" {
		return p + "?" + q
	}
	return p
}

// StaticLinker encodes state in paths so every view is a plain file:
// company filters under company/<segment>/ and overlays under
// projects/<segment>/. The mobile menu and partials are not available.
type StaticLinker struct {
	Base     string
	segments map[string]string
}

const (
	segmentCompany = "company"
	segmentProject = "projects"
)

// NewStaticLinker gives every company and project ID in ps its own path
// segment. Names that slug to nothing are numbered and clashes get a
// numeric suffix, so no two views share a directory.
func NewStaticLinker(base string, ps []profile.Project) StaticLinker {
	l := StaticLinker{Base: base, segments: make(map[string]string)}

	var companies, ids []string
	seenCompany := make(map[string]bool)
	for _, p := range ps {
		if !seenCompany[p.Company] {
			seenCompany[p.Company] = true
			companies = append(companies, p.Company)
		}
		ids = append(ids, p.ID)
	}
	l.assign(segmentCompany, "company", companies)
	l.assign(segmentProject, "project", ids)
	return l
}

func (l StaticLinker) assign(kind, fallback string, names []string) {
	used := make(map[string]bool)
	for i, name := range names {
		base := Slug(name)
		if base == "" {
			base = fmt.Sprintf("%s-%d", fallback, i+1)
		}
		seg := base
		for n := 2; used[seg]; n++ {
			seg = fmt.Sprintf("%s-%d", base, n)
		}
		used[seg] = true
		l.segments[kind+"/"+name] = seg
	}
}

func (l StaticLinker) segment(kind, name string) string {
	if seg, ok := l.segments[kind+"/"+name]; ok {
		return seg
	}
	return Slug(name)
}

func (l StaticLinker) base() string {
	if l.Base == "" {
		return "/"
	}
	return strings.TrimSuffix(l.Base, "/") + "/"
}

func (l StaticLinker) Page(sel Selection) string {
	return l.base() + l.Path(sel)
}

func (StaticLinker) Fragment(Fragment, Selection) string {
	return ""
}

func (l StaticLinker) Asset(name string) string {
	return l.base() + "static/" + name
}

// Path is the directory, relative to the export root, holding the page for
// sel. The root page is "".
func (l StaticLinker) Path(sel Selection) string {
	var parts []string
	if sel.Company != "" && sel.Company != projects.All {
		parts = append(parts, segmentCompany, l.segment(segmentCompany, sel.Company))
	}
	if sel.ProjectID != "" {
		parts = append(parts, segmentProject, l.segment(segmentProject, sel.ProjectID))
	}
	if len(parts) == 0 {
		return ""
	}
	return path.Join(parts...) + "/"
}

// Slug transliterates s to lowercase ASCII words joined by "-".
// It returns "" when nothing in s survives.
func Slug(s string) string {
	return slug.Make(s)
}
