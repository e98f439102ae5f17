package site

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pankaj139/portfolio/internal/profile"
	"github.com/pankaj139/portfolio/internal/projects"
)

func TestParseSelection_Defaults(t *testing.T) {
	sel := ParseSelection(url.Values{})
	assert.Equal(t, DefaultSelection(), sel)
	assert.Equal(t, projects.All, sel.Company)
	assert.Empty(t, sel.Query())
}

func TestParseSelection_AllParams(t *testing.T) {
	q, err := url.ParseQuery("company=Darwin+Box&project=darwinbox-singpass&menu=open")
	assert.NoError(t, err)

	sel := ParseSelection(q)
	assert.Equal(t, Selection{Company: "Darwin Box", ProjectID: "darwinbox-singpass", MenuOpen: true}, sel)
	assert.Equal(t, q, sel.Query())
}

func TestParseSelection_MenuRequiresOpen(t *testing.T) {
	sel := ParseSelection(url.Values{"menu": {"yes"}})
	assert.False(t, sel.MenuOpen)
}

func TestSelection_Transitions(t *testing.T) {
	sel := Selection{Company: "Acquia", ProjectID: "acquia-cogs", MenuOpen: true}

	assert.Equal(t, Selection{Company: "Infoedge"}, sel.WithCompany("Infoedge"))
	assert.Equal(t, Selection{Company: "Acquia", ProjectID: "acquia-ping"}, sel.WithProject("acquia-ping"))
	assert.Equal(t, Selection{Company: "Acquia", MenuOpen: true}, sel.CloseOverlay())
	assert.False(t, sel.WithMenu(false).MenuOpen)
}

func TestQueryLinker(t *testing.T) {
	l := QueryLinker{}
	sel := Selection{Company: "Darwin Box", ProjectID: "darwinbox-singpass", MenuOpen: true}

	assert.Equal(t, "/", l.Page(DefaultSelection()))
	assert.Equal(t, "/?company=Darwin+Box&menu=open&project=darwinbox-singpass", l.Page(sel))
	assert.Equal(t, "/fragments/projects?company=Darwin+Box", l.Fragment(FragmentProjects, sel))
	assert.Equal(t, "/fragments/projects/darwinbox-singpass?company=Darwin+Box", l.Fragment(FragmentProject, sel))
	assert.Equal(t, "/fragments/overlay?company=Darwin+Box", l.Fragment(FragmentOverlay, sel))
	assert.Equal(t, "/fragments/nav?company=Darwin+Box&menu=open&project=darwinbox-singpass", l.Fragment(FragmentNav, sel))
	assert.Equal(t, "/static/site.css", l.Asset("site.css"))
}

func TestStaticLinker(t *testing.T) {
	l := StaticLinker{Base: "/portfolio"}
	sel := Selection{Company: "Avyukta Infotech (Startup)", ProjectID: "avyukta-startup", MenuOpen: true}

	assert.Equal(t, "/portfolio/", l.Page(DefaultSelection()))
	assert.Equal(t, "/portfolio/company/avyukta-infotech-startup/projects/avyukta-startup/", l.Page(sel))
	assert.Equal(t, "/portfolio/static/site.css", l.Asset("site.css"))
	for _, f := range []Fragment{FragmentProjects, FragmentProject, FragmentOverlay, FragmentNav} {
		assert.Empty(t, l.Fragment(f, sel))
	}
}

func TestStaticLinker_Path(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{"root", DefaultSelection(), ""},
		{"empty company", Selection{}, ""},
		{"company", Selection{Company: "Darwin Box"}, "company/darwin-box/"},
		{"project under all", Selection{Company: projects.All, ProjectID: "acquia-cogs"}, "projects/acquia-cogs/"},
		{"project under company", Selection{Company: "Acquia", ProjectID: "acquia-cogs"}, "company/acquia/projects/acquia-cogs/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StaticLinker{}.Path(tt.sel))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "avyukta-infotech-startup", Slug("Avyukta Infotech (Startup)"))
	assert.Equal(t, "darwin-box", Slug("  Darwin   Box "))
	assert.Equal(t, "new-relic-migration", Slug("new-relic-migration"))
	assert.Equal(t, "", Slug("()"))
	assert.Equal(t, "zoe-cafe", Slug("Zoë Café"))
}

func TestNewStaticLinker_NonLatinCompanies(t *testing.T) {
	ps := []profile.Project{
		{ID: "p1", Company: "इन्फोएज"},
		{ID: "p2", Company: "डार्विन"},
		{ID: "p3", Company: "()"},
		{ID: "p4", Company: "[]"},
	}
	l := NewStaticLinker("/", ps)

	seen := map[string]string{}
	for _, p := range ps {
		got := l.Path(Selection{Company: p.Company})
		assert.NotEqual(t, "company/", got, p.Company)
		assert.NotContains(t, seen, got, "%s collides with %s", p.Company, seen[got])
		seen[got] = p.Company
	}
	assert.Equal(t, "company/company-3/", l.Path(Selection{Company: "()"}))
	assert.Equal(t, "company/company-4/", l.Path(Selection{Company: "[]"}))
}

func TestNewStaticLinker_ClashingSlugs(t *testing.T) {
	ps := []profile.Project{
		{ID: "Launch Plan", Company: "Acme Inc"},
		{ID: "launch-plan", Company: "acme-inc"},
	}
	l := NewStaticLinker("", ps)

	assert.Equal(t, "/company/acme-inc/", l.Page(Selection{Company: "Acme Inc"}))
	assert.Equal(t, "/company/acme-inc-2/", l.Page(Selection{Company: "acme-inc"}))
	assert.Equal(t, "/projects/launch-plan/", l.Page(Selection{Company: "All", ProjectID: "Launch Plan"}))
	assert.Equal(t, "/projects/launch-plan-2/", l.Page(Selection{Company: "All", ProjectID: "launch-plan"}))
}
