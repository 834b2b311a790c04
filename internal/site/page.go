package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/prakharpd/portfolio/internal/certificates"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/menu"
	"github.com/prakharpd/portfolio/internal/models"
	"github.com/prakharpd/portfolio/internal/projects"
	"github.com/prakharpd/portfolio/internal/tiles"
)

// YearID is the footer element holding the copyright year.
const YearID = "year"

// Deps are the collaborators the page components are started with.
type Deps struct {
	Lister       projects.Lister
	Account      string
	RepoCount    int
	Certificates []models.Certificate
	// Breakpoint of zero selects tiles.DefaultBreakpoint.
	Breakpoint int
	Now        func() time.Time
	Logger     *slog.Logger
}

// Page is a bootstrapped document.
type Page struct {
	doc     *dom.Document
	loader  *projects.Loader
	pending <-chan projects.Result
	settled bool
	menu    *menu.Controller
	tiles   *tiles.Controller
}

// Boot starts every page component against doc, once. The repository
// fetch is left running; call Settle before rendering.
func Boot(ctx context.Context, doc *dom.Document, deps Deps) (*Page, error) {
	if deps.Lister == nil {
		return nil, fmt.Errorf("site: no repository lister")
	}
	logger := deps.Logger
	if logger == nil {
		logger = helpers.NewNoopLogger()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	certs := deps.Certificates
	if certs == nil {
		certs = models.Certificates
	}
	breakpoint := deps.Breakpoint
	if breakpoint == 0 {
		breakpoint = tiles.DefaultBreakpoint
	}

	year, err := doc.ByID(YearID)
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}
	year.SetText(strconv.Itoa(now().Year()))

	p := &Page{doc: doc}
	p.loader, err = projects.New(doc, deps.Lister,
		projects.WithAccount(deps.Account),
		projects.WithCount(deps.RepoCount),
		projects.WithLogger(logger.With("component", "projects")))
	if err != nil {
		return nil, err
	}
	p.pending = p.loader.Start(ctx)

	if err := certificates.Render(doc, certs); err != nil {
		return nil, err
	}

	p.tiles = tiles.New(doc,
		tiles.WithBreakpoint(breakpoint),
		tiles.WithLogger(logger.With("component", "tiles")))

	p.menu, err = menu.New(doc, menu.WithLogger(logger.With("component", "menu")))
	if err != nil {
		p.tiles.Release()
		return nil, err
	}
	return p, nil
}

// Settle waits for the repository fetch and applies its outcome. Later
// calls do nothing.
func (p *Page) Settle() error {
	if p.settled {
		return nil
	}
	p.settled = true
	return p.loader.Settle(<-p.pending)
}

// Dispatch delivers a UI event to the page.
func (p *Page) Dispatch(typ, selector, key string) (*dom.Event, error) {
	return p.doc.DispatchTo(typ, selector, key)
}

// Menu is the navigation menu controller.
func (p *Page) Menu() *menu.Controller {
	return p.menu
}

// Tiles is the descriptive tile controller.
func (p *Page) Tiles() *tiles.Controller {
	return p.tiles
}

// Document is the page's document.
func (p *Page) Document() *dom.Document {
	return p.doc
}

// Render settles the page and writes it as HTML.
func (p *Page) Render(w io.Writer) error {
	if err := p.Settle(); err != nil {
		return err
	}
	return p.doc.Render(w)
}

// Close unregisters every listener.
func (p *Page) Close() {
	p.menu.Release()
	p.tiles.Release()
}
