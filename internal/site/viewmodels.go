package site

import "html/template"

// PageViewModel is used for the index page.
type PageViewModel struct {
	Title       string
	Owner       string
	Tagline     string
	About       template.HTML
	Experiences []TileViewModel
	Skills      []TileViewModel
}

// TileViewModel is a descriptive tile with its markdown body already rendered.
type TileViewModel struct {
	Class   string
	Title   string
	Summary string
	Body    template.HTML
}
