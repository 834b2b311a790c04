// Package dom is the in-memory document the page components are bootstrapped against.
//
// A Document wraps a parsed goquery document together with the window it is
// displayed in and the listeners registered on its nodes. Components look up
// their hooks once, keep the selections they were handed, and mutate them in
// place. Rendering serializes whatever state the tree ends up in.
package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrMissingHook is returned when the markup lacks an element a component needs.
var ErrMissingHook = errors.New("missing document hook")

// DocumentSelector addresses the document root in Dispatch targets.
const DocumentSelector = "document"

// Window carries the viewport state visible to components.
type Window struct {
	InnerWidth int
}

// Document is a parsed page plus its event listeners.
type Document struct {
	doc       *goquery.Document
	window    *Window
	listeners *dispatcher
}

// Parse reads HTML markup into a Document displayed in win.
func Parse(r io.Reader, win *Window) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if win == nil {
		win = &Window{}
	}
	return &Document{
		doc:       doc,
		window:    win,
		listeners: newDispatcher(),
	}, nil
}

// Window returns the window the document is displayed in.
func (d *Document) Window() *Window {
	return d.window
}

// Root is the document node itself.
func (d *Document) Root() *html.Node {
	return d.doc.Nodes[0]
}

// Find runs selector against the whole document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Require is Find, failing with ErrMissingHook when nothing matches.
func (d *Document) Require(selector string) (*goquery.Selection, error) {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingHook, selector)
	}
	return sel, nil
}

// ByID returns the element with the given id.
func (d *Document) ByID(id string) (*goquery.Selection, error) {
	return d.Require("#" + id)
}

// Wrap returns a selection holding n. The root node yields an empty
// selection since it is not an element.
func (d *Document) Wrap(n *html.Node) *goquery.Selection {
	return d.doc.FindNodes(n)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root())
}
