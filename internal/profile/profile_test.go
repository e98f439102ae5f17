package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Pankaj Khandelwal", p.Name)
	assert.Equal(t, "Tech Lead & Engineering Manager", p.Title)
	assert.Len(t, p.Experiences, 8)
	assert.Len(t, p.Projects, 18)
	assert.NotEmpty(t, p.Skills)
	assert.Equal(t, 7, p.CompanyRanks["Highspot"])
	assert.Equal(t, 1, p.CompanyRanks["Sapient"])
}

func TestDefault_SharedInstance(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDefault_EveryProjectCompanyIsRanked(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	for _, proj := range p.Projects {
		_, ok := p.CompanyRanks[proj.Company]
		assert.True(t, ok, "company %q of project %q has no rank", proj.Company, proj.ID)
	}
}

func TestDefault_SkillOrderPreserved(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	var categories []string
	for _, g := range p.Skills {
		categories = append(categories, g.Category)
	}
	assert.Equal(t, []string{"Leadership", "Cloud_AWS", "Backend", "Frontend", "Databases_Caching", "DevOps_Tools"}, categories)
}

func TestSkillGroup_DisplayName(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Cloud_AWS", "Cloud & AWS"},
		{"Databases_Caching", "Databases & Caching"},
		{"Leadership", "Leadership"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillGroup{Category: tt.category}.DisplayName())
		})
	}
}

func TestParse_DuplicateProjectIDs(t *testing.T) {
	doc := `{
		"name": "Test User",
		"title": "Engineer",
		"summary": "Builds things.",
		"projects": [
			{"id": "dup", "title": "One", "company": "A"},
			{"id": "dup", "title": "Two", "company": "B"}
		]
	}`

	p, err := Parse([]byte(doc), FormatJSON)
	assert.Nil(t, p)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], `project id "dup"`)
}

func TestParse_MissingRequiredFields(t *testing.T) {
	doc := "title: Engineer\nprojects:\n  - id: x\n    company: A\n"

	_, err := Parse([]byte(doc), FormatYAML)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "Profile.Name")
	assert.Contains(t, err.Error(), "Profile.Summary")
	assert.Contains(t, err.Error(), "Profile.Projects[0].Title")
}

func TestParse_InvalidEmail(t *testing.T) {
	doc := "name: A\ntitle: B\nsummary: C\ncontact:\n  email: not-an-email\n"

	_, err := Parse([]byte(doc), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Profile.Contact.Email")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile YAML")
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Same(t, def, p)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `name: Test User
title: Engineer
summary: Builds things.
projects:
  - id: p1
    title: First
    company: Acme
company_ranks:
  Acme: 3
`
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test User", p.Name)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "Acme", p.Projects[0].Company)
	assert.Equal(t, 3, p.CompanyRanks["Acme"])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("profile.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported profile format")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/profile.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}
