// Package projects orders and filters the project case studies shown on the site.
package projects

import (
	"cmp"
	"slices"

	"github.com/pankaj139/portfolio/internal/profile"
)

// All is the filter value that shows every project.
const All = "All"

// UnknownRank places companies missing from the rank table after all others.
const UnknownRank = 999

// RankTable maps a company name to its chronological rank, earliest employer lowest.
type RankTable map[string]int

// Rank returns the rank of company, or UnknownRank when the table has no exact entry.
func (t RankTable) Rank(company string) int {
	if r, ok := t[company]; ok {
		return r
	}
	return UnknownRank
}

// Companies returns "All" followed by each distinct company, ascending by rank.
// Companies sharing a rank keep their first-appearance order.
func Companies(projects []profile.Project, ranks RankTable) []string {
	seen := make(map[string]bool)
	var companies []string
	for _, p := range projects {
		if seen[p.Company] {
			continue
		}
		seen[p.Company] = true
		companies = append(companies, p.Company)
	}

	slices.SortStableFunc(companies, func(a, b string) int {
		return cmp.Compare(ranks.Rank(a), ranks.Rank(b))
	})

	return append([]string{All}, companies...)
}

// Filter returns the projects to display for a company selection.
// For All, every project is returned, most recent employer first; otherwise
// only the projects of that company, in their original order.
func Filter(projects []profile.Project, ranks RankTable, company string) []profile.Project {
	if company == All {
		out := slices.Clone(projects)
		slices.SortStableFunc(out, func(a, b profile.Project) int {
			return cmp.Compare(ranks.Rank(b.Company), ranks.Rank(a.Company))
		})
		return out
	}

	var out []profile.Project
	for _, p := range projects {
		if p.Company == company {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many projects belong to company.
func Count(projects []profile.Project, company string) int {
	n := 0
	for _, p := range projects {
		if p.Company == company {
			n++
		}
	}
	return n
}
