package tiles_test

import (
	"strings"
	"testing"

	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markup = `<html><body>
<section id="experience">
  <div class="experience-tile" id="a" tabindex="0"><h3>A</h3><div class="tile-body"><a href="https://example.com">more</a></div></div>
  <div class="experience-tile" id="b" tabindex="0"><h3>B</h3></div>
</section>
<section id="skills">
  <div class="skill-tile" id="c" tabindex="0"><h3>C</h3></div>
</section>
<footer id="footer">footer</footer>
</body></html>`

func setup(t *testing.T, width int, opts ...tiles.Option) (*dom.Document, *tiles.Controller) {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(markup), &dom.Window{InnerWidth: width})
	require.NoError(t, err)
	return doc, tiles.New(doc, opts...)
}

func dispatch(t *testing.T, doc *dom.Document, typ, selector, key string) *dom.Event {
	t.Helper()
	ev, err := doc.DispatchTo(typ, selector, key)
	require.NoError(t, err)
	return ev
}

func activeIDs(doc *dom.Document) []string {
	var ids []string
	for _, n := range doc.Find(tiles.Selector).Filter(".active").Nodes {
		for _, a := range n.Attr {
			if a.Key == "id" {
				ids = append(ids, a.Val)
			}
		}
	}
	return ids
}

func TestClickActivatesOnlyOne(t *testing.T) {
	doc, c := setup(t, 600)
	require.Equal(t, 3, c.Len())

	ev := dispatch(t, doc, dom.EventClick, "#a", "")
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, []string{"a"}, activeIDs(doc))
	assert.Equal(t, 0, c.Active())

	dispatch(t, doc, dom.EventClick, "#b", "")
	assert.Equal(t, []string{"b"}, activeIDs(doc))

	// Groups span both tile kinds.
	dispatch(t, doc, dom.EventClick, "#c", "")
	assert.Equal(t, []string{"c"}, activeIDs(doc))
	assert.Equal(t, 2, c.Active())
}

func TestClickTogglesSameTile(t *testing.T) {
	doc, c := setup(t, 900)

	dispatch(t, doc, dom.EventClick, "#a", "")
	dispatch(t, doc, dom.EventClick, "#a", "")
	assert.Empty(t, activeIDs(doc))
	assert.Equal(t, -1, c.Active())
}

func TestClickInsideTileContent(t *testing.T) {
	doc, _ := setup(t, 600)

	ev := dispatch(t, doc, dom.EventClick, "#a .tile-body a", "")
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, []string{"a"}, activeIDs(doc))
}

func TestWideViewportIgnoresGestures(t *testing.T) {
	doc, c := setup(t, 901)

	ev := dispatch(t, doc, dom.EventClick, "#a", "")
	assert.False(t, ev.DefaultPrevented())
	ev = dispatch(t, doc, dom.EventKeyDown, "#b", "Enter")
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, activeIDs(doc))
	assert.Equal(t, -1, c.Active())
}

func TestKeyboardActivation(t *testing.T) {
	testCases := []struct {
		Name     string
		Key      string
		Expected []string
	}{
		{Name: "enter", Key: "Enter", Expected: []string{"b"}},
		{Name: "space", Key: " ", Expected: []string{"b"}},
		{Name: "other_key", Key: "Escape", Expected: []string{"a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			doc, _ := setup(t, 375)
			dispatch(t, doc, dom.EventKeyDown, "#a", "Enter")
			require.Equal(t, []string{"a"}, activeIDs(doc))

			ev := dispatch(t, doc, dom.EventKeyDown, "#b", tc.Key)
			assert.Equal(t, tc.Expected, activeIDs(doc))
			assert.Equal(t, tc.Key != "Escape", ev.DefaultPrevented())
		})
	}
}

func TestOutsideClickResets(t *testing.T) {
	doc, _ := setup(t, 600)
	dispatch(t, doc, dom.EventClick, "#a", "")

	dispatch(t, doc, dom.EventClick, "#footer", "")
	assert.Empty(t, activeIDs(doc))
}

func TestOutsideClickOnWideViewportKeepsState(t *testing.T) {
	doc, _ := setup(t, 600)
	dispatch(t, doc, dom.EventClick, "#a", "")

	doc.Window().InnerWidth = 1200
	dispatch(t, doc, dom.EventClick, dom.DocumentSelector, "")
	assert.Equal(t, []string{"a"}, activeIDs(doc))
}

func TestCustomBreakpoint(t *testing.T) {
	doc, _ := setup(t, 1000, tiles.WithBreakpoint(1024))
	dispatch(t, doc, dom.EventClick, "#c", "")
	assert.Equal(t, []string{"c"}, activeIDs(doc))
}

func TestNoTiles(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><p id="x">x</p></body></html>`), &dom.Window{InnerWidth: 400})
	require.NoError(t, err)
	c := tiles.New(doc)
	assert.Zero(t, c.Len())
	dispatch(t, doc, dom.EventClick, "#x", "")
	assert.Equal(t, -1, c.Active())
}

func TestRelease(t *testing.T) {
	doc, c := setup(t, 600)
	c.Release()
	assert.Zero(t, doc.ListenerCount())

	ev := dispatch(t, doc, dom.EventClick, "#a", "")
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, activeIDs(doc))
}
