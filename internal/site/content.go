package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders author-supplied content. Raw HTML in the source is
// dropped, so the output is safe to mark as template.HTML.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
)

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes raw HTML by default
}

// buildPage turns the site config into the index view model.
func buildPage(site config.Site) (PageViewModel, error) {
	about, err := renderMarkdown(site.About)
	if err != nil {
		return PageViewModel{}, fmt.Errorf("failed to render about section: %w", err)
	}
	vm := PageViewModel{
		Title:   site.Title,
		Owner:   site.Owner,
		Tagline: site.Tagline,
		About:   about,
	}

	for i, tile := range site.Tiles {
		body, err := renderMarkdown(tile.Body)
		if err != nil {
			return PageViewModel{}, fmt.Errorf("failed to render tile %d (%s): %w", i, tile.Title, err)
		}
		tvm := TileViewModel{
			Class:   string(tile.Kind) + "-tile",
			Title:   tile.Title,
			Summary: tile.Summary,
			Body:    body,
		}
		switch tile.Kind {
		case models.TileSkill:
			vm.Skills = append(vm.Skills, tvm)
		default:
			vm.Experiences = append(vm.Experiences, tvm)
		}
	}
	return vm, nil
}
