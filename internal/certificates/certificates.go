// Package certificates renders the fixed certificate gallery.
package certificates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/models"
)

// ContainerID is the element the tiles are appended to.
const ContainerID = "certificates-container"

//go:embed tile.html
var tileFS embed.FS

var tmpl = template.Must(template.ParseFS(tileFS, "tile.html"))

// Render appends one tile per certificate to the certificates container.
// Thumbnails are plain image references; a broken one is left to the browser.
func Render(doc *dom.Document, certs []models.Certificate) error {
	container, err := doc.ByID(ContainerID)
	if err != nil {
		return fmt.Errorf("certificates: %w", err)
	}

	var buf bytes.Buffer
	for _, cert := range certs {
		if err := tmpl.ExecuteTemplate(&buf, "certificate_tile", cert); err != nil {
			return fmt.Errorf("failed to render certificate %s: %w", cert.ID, err)
		}
	}
	container.AppendHtml(buf.String())
	return nil
}
