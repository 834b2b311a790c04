// Package menu drives the collapsible navigation menu.
package menu

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
)

// Document hooks.
const (
	NavbarSelector   = ".navbar"
	ToggleSelector   = ".hamburger"
	LinksSelector    = ".nav-links"
	LinkItemSelector = ".nav-links a"

	activeClass = "active"
)

// Controller owns the navbar subtree and its open/closed state.
type Controller struct {
	doc    *dom.Document
	toggle *goquery.Selection
	links  *goquery.Selection
	items  *goquery.Selection
	open   bool
	logger *slog.Logger
	off    []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New looks up the menu hooks in doc and registers the click listeners.
func New(doc *dom.Document, opts ...Option) (*Controller, error) {
	c := &Controller{doc: doc}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = helpers.NewNoopLogger()
	}

	if _, err := doc.Require(NavbarSelector); err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	var err error
	if c.toggle, err = doc.Require(ToggleSelector); err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	if c.links, err = doc.Require(LinksSelector); err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	c.items = doc.Find(LinkItemSelector)

	c.off = append(c.off,
		doc.On(c.toggle, dom.EventClick, func(*dom.Event) { c.Toggle() }),
		doc.On(c.items, dom.EventClick, func(*dom.Event) { c.Close() }),
		doc.OnDocument(dom.EventClick, func(ev *dom.Event) {
			if ev.Closest(NavbarSelector).Length() == 0 {
				c.Close()
			}
		}),
	)
	c.sync()
	return c, nil
}

// Open reports whether the menu is expanded.
func (c *Controller) Open() bool {
	return c.open
}

// Toggle flips the menu between open and closed.
func (c *Controller) Toggle() {
	c.set(!c.open)
}

// Close forces the menu closed.
func (c *Controller) Close() {
	c.set(false)
}

// Release unregisters every listener the controller added.
func (c *Controller) Release() {
	for _, off := range c.off {
		off()
	}
	c.off = nil
}

func (c *Controller) set(open bool) {
	if c.open != open {
		c.logger.Debug("menu state changed", slog.Bool("open", open))
	}
	c.open = open
	c.sync()
}

func (c *Controller) sync() {
	if c.open {
		c.toggle.AddClass(activeClass)
		c.links.AddClass(activeClass)
	} else {
		c.toggle.RemoveClass(activeClass)
		c.links.RemoveClass(activeClass)
	}
	c.toggle.SetAttr("aria-expanded", strconv.FormatBool(c.open))
}
