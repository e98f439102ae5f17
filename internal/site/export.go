package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pankaj139/portfolio/internal/projects"
	"github.com/pankaj139/portfolio/internal/web"
)

// ExportResult lists the pages written by Export, relative to its root.
type ExportResult struct {
	Pages  []string
	Assets []string
}

// Export writes every reachable view of the site as static HTML under dir:
// one page per company filter and one per open project within each filter.
// Links are rooted at base, which defaults to "/". Path segments come from
// NewStaticLinker, so every view gets its own directory.
func (s *Site) Export(dir, base string) (*ExportResult, error) {
	l := NewStaticLinker(base, s.profile.Projects)
	res := &ExportResult{}

	browser := projects.NewBrowser(s.profile.Projects, s.ranks, nil)
	for _, choice := range browser.Choices() {
		company := DefaultSelection().WithCompany(choice.Company)
		if err := browser.Select(choice.Company); err != nil {
			return nil, err
		}

		views := []Selection{company}
		for _, p := range browser.Visible() {
			views = append(views, company.WithProject(p.ID))
		}

		for _, sel := range views {
			rel := l.Path(sel)
			page := filepath.Join(dir, filepath.FromSlash(rel), "index.html")
			if err := s.writePage(page, sel, l); err != nil {
				return nil, err
			}
			res.Pages = append(res.Pages, filepath.ToSlash(filepath.Join(rel, "index.html")))
		}
	}

	assets, err := copyAssets(web.Static(), filepath.Join(dir, "static"))
	if err != nil {
		return nil, err
	}
	res.Assets = assets
	return res, nil
}

func (s *Site) writePage(path string, sel Selection, l Linker) error {
	var buf bytes.Buffer
	if err := s.Render(&buf, sel, l); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func copyAssets(src fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		copied = append(copied, "static/"+name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return copied, nil
}
