package models

// Repository is a single repository listed on the portfolio.
type Repository struct {
	Name    string
	HTMLURL string
	// Language is empty when GitHub reports none.
	Language    string
	Description string
}

// Certificate is a certificate hosted on Google Drive.
type Certificate struct {
	ID   string
	Name string
}

// ViewURL is the Drive viewer link for the certificate.
func (c Certificate) ViewURL() string {
	return "https://drive.google.com/file/d/" + c.ID + "/view"
}

// ThumbnailURL is the Drive thumbnail image for the certificate.
func (c Certificate) ThumbnailURL() string {
	return "https://drive.google.com/thumbnail?id=" + c.ID + "&sz=w400"
}

// Certificates is the fixed list rendered in the certificates section.
var Certificates = []Certificate{
	{ID: "1fK_uopU078aZ7yp8fo2ySVADXQm1U1sa", Name: "Supervised Machine Learning By Andrew Ng"},
	{ID: "1sK2849ss701eUOXnIxz_fmjwlEvyLckx", Name: "Machine Learning A-Z"},
	{ID: "1Hz4SJPa2pmicrZcu-Alp-2q-dddZilsr", Name: "What is Generative AI ?"},
}

// TileKind selects the CSS class a descriptive tile is rendered with.
type TileKind string

const (
	TileExperience TileKind = "experience"
	TileSkill      TileKind = "skill"
)

// Tile is a descriptive tile (an experience or a skill) authored in the site config.
type Tile struct {
	Kind    TileKind `yaml:"kind"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary,omitempty"`
	Body    string   `yaml:"body,omitempty"`
}
