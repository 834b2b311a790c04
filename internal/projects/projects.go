// Package projects loads the account's recent repositories and renders one tile per repository.
package projects

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/languages"
	"github.com/prakharpd/portfolio/internal/models"
)

// ContainerID is the element the tiles are rendered into.
const ContainerID = "projects-container"

// User-visible status messages.
const (
	EmptyMessage   = "No repositories found."
	FailureMessage = "Unable to load projects. Please try again later."
)

//go:embed tiles.html
var tilesFS embed.FS

var tmpl = template.Must(template.ParseFS(tilesFS, "tiles.html"))

// Lister lists an account's most recently updated repositories.
type Lister interface {
	ListRecent(ctx context.Context, account string, count int) ([]models.Repository, error)
}

// Result is the settled outcome of one fetch.
type Result struct {
	Repos []models.Repository
	Err   error
}

// TileViewModel is what a project tile is rendered from.
type TileViewModel struct {
	Name        string
	URL         string
	Icon        string
	Description string
}

// Loader owns the projects container.
type Loader struct {
	container *goquery.Selection
	lister    Lister
	account   string
	count     int
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithAccount sets the account whose repositories are listed.
func WithAccount(account string) Option {
	return func(l *Loader) {
		l.account = account
	}
}

// WithCount bounds the number of repositories requested.
func WithCount(count int) Option {
	return func(l *Loader) {
		l.count = count
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New binds a Loader to the projects container of doc.
func New(doc *dom.Document, lister Lister, opts ...Option) (*Loader, error) {
	container, err := doc.ByID(ContainerID)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	l := &Loader{container: container, lister: lister}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = helpers.NewNoopLogger()
	}
	return l, nil
}

// Start issues the fetch on its own goroutine. The returned channel yields
// exactly one Result. The document is not touched until Settle.
func (l *Loader) Start(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		repos, err := l.lister.ListRecent(ctx, l.account, l.count)
		out <- Result{Repos: repos, Err: err}
	}()
	return out
}

// Settle replaces the placeholder content with the outcome of a fetch.
// Fetch failures are logged and rendered, never returned.
func (l *Loader) Settle(res Result) error {
	if res.Err != nil {
		l.logger.Error("Error fetching GitHub projects", slog.String("account", l.account), slog.Any("error", res.Err))
		return l.status(FailureMessage)
	}
	if len(res.Repos) == 0 {
		return l.status(EmptyMessage)
	}

	var buf bytes.Buffer
	for _, repo := range res.Repos {
		vm := TileViewModel{
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Icon:        languages.Icon(repo.Language),
			Description: repo.Description,
		}
		if err := tmpl.ExecuteTemplate(&buf, "project_tile", vm); err != nil {
			return fmt.Errorf("failed to render tile for %s: %w", repo.Name, err)
		}
	}
	l.container.Empty()
	l.container.AppendHtml(buf.String())
	l.logger.Info("projects rendered", slog.Int("count", len(res.Repos)))
	return nil
}

// Load is Start followed by Settle.
func (l *Loader) Load(ctx context.Context) error {
	return l.Settle(<-l.Start(ctx))
}

func (l *Loader) status(message string) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "status", message); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	l.container.SetHtml(buf.String())
	return nil
}
