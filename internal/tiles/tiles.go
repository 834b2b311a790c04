// Package tiles adds tap and keyboard expansion to the experience and skill tiles.
//
// Wide viewports reveal tile details on hover through CSS alone, so the
// controller only reacts at or below the breakpoint.
package tiles

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
	"golang.org/x/net/html"
)

const (
	// Selector matches every tile in the group.
	Selector = ".experience-tile, .skill-tile"
	// DefaultBreakpoint is the widest viewport, in CSS pixels, that uses tap interaction.
	DefaultBreakpoint = 900

	activeClass = "active"
)

// Controller keeps at most one tile of its group active.
type Controller struct {
	doc        *dom.Document
	tiles      *goquery.Selection
	breakpoint int
	logger     *slog.Logger
	off        []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithBreakpoint overrides DefaultBreakpoint.
func WithBreakpoint(px int) Option {
	return func(c *Controller) {
		c.breakpoint = px
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New registers the tile listeners on doc. A page without tiles gets a
// controller with an empty group.
func New(doc *dom.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:        doc,
		tiles:      doc.Find(Selector),
		breakpoint: DefaultBreakpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = helpers.NewNoopLogger()
	}

	for _, n := range c.tiles.Nodes {
		tile := n
		c.off = append(c.off,
			doc.OnNode(tile, dom.EventClick, func(ev *dom.Event) {
				if !c.compact() {
					return
				}
				ev.PreventDefault()
				c.activate(tile)
			}),
			doc.OnNode(tile, dom.EventKeyDown, func(ev *dom.Event) {
				if !isActivationKey(ev.Key) || !c.compact() {
					return
				}
				ev.PreventDefault()
				c.activate(tile)
			}),
		)
	}
	c.off = append(c.off, doc.OnDocument(dom.EventClick, func(ev *dom.Event) {
		if c.compact() && ev.Closest(Selector).Length() == 0 {
			c.Reset()
		}
	}))
	return c
}

// Active returns the index of the active tile, or -1.
func (c *Controller) Active() int {
	active := -1
	c.tiles.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if s.HasClass(activeClass) {
			active = i
			return false
		}
		return true
	})
	return active
}

// Len is the number of tiles in the group.
func (c *Controller) Len() int {
	return c.tiles.Length()
}

// Reset deactivates every tile.
func (c *Controller) Reset() {
	c.tiles.RemoveClass(activeClass)
}

// Release unregisters every listener the controller added.
func (c *Controller) Release() {
	for _, off := range c.off {
		off()
	}
	c.off = nil
}

func (c *Controller) compact() bool {
	return c.doc.Window().InnerWidth <= c.breakpoint
}

func (c *Controller) activate(tile *html.Node) {
	c.tiles.Each(func(_ int, s *goquery.Selection) {
		if s.Get(0) != tile {
			s.RemoveClass(activeClass)
		}
	})
	sel := c.doc.Wrap(tile)
	sel.ToggleClass(activeClass)
	c.logger.Debug("tile toggled", slog.Bool("active", sel.HasClass(activeClass)))
}

func isActivationKey(key string) bool {
	return key == "Enter" || key == " "
}
