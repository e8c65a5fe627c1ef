// Package site turns a normalized candidate view and a theme name into a
// self-contained static website (markup, stylesheet, behavior script) and
// materializes the three artifacts under a per-site directory.
package site

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/google/uuid"

	"resume-portfolio/internal/normalize"
)

// ErrUnknownSite is returned when a website identifier does not name a
// generated site.
var ErrUnknownSite = errors.New("unknown website id")

const (
	markupFile = "index.html"
	styleFile  = "style.css"
	scriptFile = "script.js"
)

// Site holds one generated website: its opaque identifier, the directory the
// artifacts were written to, and the artifact contents. Never mutated after
// creation.
type Site struct {
	ID         string
	Dir        string
	Markup     string
	Stylesheet string
	Script     string
}

type Generator struct {
	sitesDir string
	markup   *htmltemplate.Template
	style    *texttemplate.Template
}

func NewGenerator(sitesDir string) (*Generator, error) {
	markup, err := htmltemplate.New("markup").Parse(markupTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup template: %w", err)
	}
	style, err := texttemplate.New("style").Parse(styleTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse style template: %w", err)
	}
	if err := os.MkdirAll(sitesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sites dir: %w", err)
	}
	return &Generator{sitesDir: sitesDir, markup: markup, style: style}, nil
}

type pageData struct {
	View     *normalize.View
	Initials string
}

// Generate renders the three artifacts for the given view and theme and
// writes them under a fresh unique directory. Unknown theme names fall back
// to the professional default. The same view and theme always produce
// identical artifact bytes under distinct identifiers.
func (g *Generator) Generate(view *normalize.View, themeName string) (*Site, error) {
	theme := ResolveTheme(themeName)

	var markupBuf bytes.Buffer
	if err := g.markup.Execute(&markupBuf, pageData{View: view, Initials: initials(view.Name)}); err != nil {
		return nil, fmt.Errorf("failed to render markup: %w", err)
	}

	var styleBuf bytes.Buffer
	if err := g.style.Execute(&styleBuf, theme); err != nil {
		return nil, fmt.Errorf("failed to render stylesheet: %w", err)
	}

	id := uuid.NewString()
	dir := filepath.Join(g.sitesDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create site dir: %w", err)
	}

	s := &Site{
		ID:         id,
		Dir:        dir,
		Markup:     markupBuf.String(),
		Stylesheet: styleBuf.String(),
		Script:     behaviorScript,
	}

	artifacts := map[string]string{
		markupFile: s.Markup,
		styleFile:  s.Stylesheet,
		scriptFile: s.Script,
	}
	for name, content := range artifacts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	log.Printf("Generated site %s (theme %s) for %q", id, theme.Name, view.Name)
	return s, nil
}

// SiteDir resolves a website identifier to its artifact directory, rejecting
// malformed ids before touching the filesystem so an id can never escape the
// sites dir.
func (g *Generator) SiteDir(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrUnknownSite
	}
	dir := filepath.Join(g.sitesDir, id)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", ErrUnknownSite
	}
	return dir, nil
}

// Markup returns the stored markup artifact for a generated site.
func (g *Generator) Markup(id string) ([]byte, error) {
	dir, err := g.SiteDir(id)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(filepath.Join(dir, markupFile))
	if err != nil {
		return nil, ErrUnknownSite
	}
	return content, nil
}

// initials derives the two-letter avatar text from the first two characters
// of the name, uppercased.
func initials(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
