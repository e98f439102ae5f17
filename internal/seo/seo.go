// Package seo rewrites page metadata: the document title, the meta
// description and the Open Graph title/description tags.
package seo

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/pankaj139/portfolio/internal/profile"
)

const (
	descriptionSelector   = `meta[name="description"]`
	ogTitleSelector       = `meta[property="og:title"]`
	ogDescriptionSelector = `meta[property="og:description"]`
)

// Metadata is the set of values to write. Empty fields are left alone.
type Metadata struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
}

// FromProfile derives the page metadata from the profile.
func FromProfile(p *profile.Profile) Metadata {
	title := fmt.Sprintf("%s - %s", p.Name, p.Title)
	return Metadata{
		Title:         title,
		Description:   p.Summary,
		OGTitle:       title,
		OGDescription: p.Summary,
	}
}

// Defaults is the generic head written into the layout before Apply runs:
// the profile title as a portfolio and the hero subtitle, falling back to
// the summary.
func Defaults(p *profile.Profile) Metadata {
	title := fmt.Sprintf("%s - %s Portfolio", p.Name, p.Title)
	desc := p.HeroSubtitle
	if desc == "" {
		desc = p.Summary
	}
	return Metadata{
		Title:         title,
		Description:   desc,
		OGTitle:       title,
		OGDescription: desc,
	}
}

// Apply writes meta into doc. The title is always set when given, creating
// the element if needed; meta tags are only updated if they already exist.
func Apply(doc *goquery.Document, meta Metadata) {
	if meta.Title != "" {
		setTitle(doc, meta.Title)
	}
	if meta.Description != "" {
		setContent(doc, descriptionSelector, meta.Description)
	}
	if meta.OGTitle != "" {
		setContent(doc, ogTitleSelector, meta.OGTitle)
	}
	if meta.OGDescription != "" {
		setContent(doc, ogDescriptionSelector, meta.OGDescription)
	}
}

// Rewrite parses an HTML page, applies meta and serialises it back.
func Rewrite(page []byte, meta Metadata) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	Apply(doc, meta)

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	return []byte(out), nil
}

func setTitle(doc *goquery.Document, title string) {
	sel := doc.Find("head title").First()
	if sel.Length() == 0 {
		doc.Find("head").AppendHtml("<title></title>")
		sel = doc.Find("head title").First()
	}
	sel.SetText(title)
}

func setContent(doc *goquery.Document, selector, content string) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return
	}
	sel.SetAttr("content", content)
}
