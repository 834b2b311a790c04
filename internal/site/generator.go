// Package site renders the portfolio page, either once into a directory or per request over HTTP.
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
)

//go:embed templates/*.html templates/style.css
var templateFS embed.FS

// Stylesheet returns the embedded style.css.
func Stylesheet() ([]byte, error) {
	return templateFS.ReadFile("templates/style.css")
}

// Renderer holds the page markup rendered from the site content. The
// markup is static, so it is built once and parsed into a fresh document
// for every page load.
type Renderer struct {
	markup []byte
}

// NewRenderer parses the embedded templates and renders the host markup.
func NewRenderer(site config.Site) (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	vm, err := buildPage(site)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.html", vm); err != nil {
		return nil, fmt.Errorf("failed to render index.html: %w", err)
	}
	return &Renderer{markup: buf.Bytes()}, nil
}

// Document parses a new document from the markup.
func (r *Renderer) Document(win *dom.Window) (*dom.Document, error) {
	return dom.Parse(bytes.NewReader(r.markup), win)
}

// Load builds a document, boots it, and waits for the page to settle.
func (r *Renderer) Load(ctx context.Context, win *dom.Window, deps Deps) (*Page, error) {
	doc, err := r.Document(win)
	if err != nil {
		return nil, err
	}
	page, err := Boot(ctx, doc, deps)
	if err != nil {
		return nil, err
	}
	if err := page.Settle(); err != nil {
		page.Close()
		return nil, err
	}
	return page, nil
}

// Generate renders index.html and style.css into outputDir.
func Generate(ctx context.Context, r *Renderer, outputDir string, deps Deps) error {
	logger := deps.Logger
	if logger == nil {
		logger = helpers.NewNoopLogger()
	}
	logger.Info("Starting generation", slog.String("output", outputDir))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	page, err := r.Load(ctx, &dom.Window{}, deps)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	defer page.Close()

	if err := renderPage(page, filepath.Join(outputDir, "index.html")); err != nil {
		return err
	}

	css, err := Stylesheet()
	if err != nil {
		return fmt.Errorf("failed to read style.css: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "style.css"), css, 0644); err != nil {
		return fmt.Errorf("failed to copy style.css: %w", err)
	}

	logger.Info("Generation complete")
	return nil
}

func renderPage(page *Page, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}
