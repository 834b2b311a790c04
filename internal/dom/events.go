package dom

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Event types understood by the page components.
const (
	EventClick   = "click"
	EventKeyDown = "keydown"
)

// Event is a UI event travelling from its target up to the document root.
type Event struct {
	Type   string
	Target *html.Node
	// Key is set for keyboard events, using DOM key names ("Enter", " ").
	Key string

	// CurrentTarget is the node whose listener is running.
	CurrentTarget *html.Node

	doc              *Document
	defaultPrevented bool
}

// PreventDefault cancels the browser default (link navigation and the like).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Closest returns the nearest element matching selector, starting at the
// target itself. It is empty when the target lies outside every match.
func (e *Event) Closest(selector string) *goquery.Selection {
	return e.doc.Wrap(e.Target).Closest(selector)
}

// Handler reacts to an event.
type Handler func(ev *Event)

type listener struct {
	typ string
	fn  Handler
}

type dispatcher struct {
	byNode map[*html.Node][]*listener
}

func newDispatcher() *dispatcher {
	return &dispatcher{byNode: make(map[*html.Node][]*listener)}
}

func (d *dispatcher) add(n *html.Node, typ string, fn Handler) func() {
	l := &listener{typ: typ, fn: fn}
	d.byNode[n] = append(d.byNode[n], l)
	return func() { d.remove(n, l) }
}

func (d *dispatcher) remove(n *html.Node, l *listener) {
	list := d.byNode[n]
	for i, candidate := range list {
		if candidate == l {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(d.byNode, n)
		return
	}
	d.byNode[n] = list
}

func (d *dispatcher) registered(n *html.Node, l *listener) bool {
	for _, candidate := range d.byNode[n] {
		if candidate == l {
			return true
		}
	}
	return false
}

func (d *dispatcher) count() int {
	total := 0
	for _, list := range d.byNode {
		total += len(list)
	}
	return total
}

// On registers fn for events of type typ on every node in sel. The returned
// func unregisters all of them and is safe to call more than once.
func (d *Document) On(sel *goquery.Selection, typ string, fn Handler) func() {
	removers := make([]func(), 0, sel.Length())
	for _, n := range sel.Nodes {
		removers = append(removers, d.listeners.add(n, typ, fn))
	}
	return joinRemovers(removers)
}

// OnNode registers fn on a single node.
func (d *Document) OnNode(n *html.Node, typ string, fn Handler) func() {
	return joinRemovers([]func(){d.listeners.add(n, typ, fn)})
}

// OnDocument registers fn on the document root, where every event ends up.
func (d *Document) OnDocument(typ string, fn Handler) func() {
	return d.OnNode(d.Root(), typ, fn)
}

// ListenerCount is the number of listeners currently registered.
func (d *Document) ListenerCount() int {
	return d.listeners.count()
}

// Dispatch delivers ev to the listeners on its target and each ancestor in
// turn, ending at the document root.
func (d *Document) Dispatch(ev *Event) *Event {
	ev.doc = d
	if ev.Target == nil {
		ev.Target = d.Root()
	}
	for n := ev.Target; n != nil; n = n.Parent {
		// Copy so listeners may unregister while the event is in flight. A
		// listener removed by an earlier one is skipped.
		list := append([]*listener(nil), d.listeners.byNode[n]...)
		for _, l := range list {
			if l.typ != ev.Type || !d.listeners.registered(n, l) {
				continue
			}
			ev.CurrentTarget = n
			l.fn(ev)
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// DispatchTo builds an event aimed at the first element matching selector,
// or at the document root for DocumentSelector, and dispatches it.
func (d *Document) DispatchTo(typ, selector, key string) (*Event, error) {
	target := d.Root()
	if selector != DocumentSelector {
		sel, err := d.Require(selector)
		if err != nil {
			return nil, fmt.Errorf("no event target: %w", err)
		}
		target = sel.Get(0)
	}
	return d.Dispatch(&Event{Type: typ, Target: target, Key: key}), nil
}

func joinRemovers(removers []func()) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		for _, remove := range removers {
			remove()
		}
	}
}
