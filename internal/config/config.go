// Package config holds the portfolio's configuration: the YAML file, its defaults, and the site content.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/prakharpd/portfolio/internal/models"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration tree.
type Config struct {
	// Logging controls the CLI logger.
	Logging Logging `yaml:"logging,omitempty"`
	// GitHub selects whose repositories are listed.
	GitHub GitHub `yaml:"github,omitempty"`
	// Site is the page content.
	Site Site `yaml:"site,omitempty"`
	// Service configures serve mode.
	Service Service `yaml:"service,omitempty"`
	// Generate configures generate mode.
	Generate Generate `yaml:"generate,omitempty"`
}

type Logging struct {
	// Verbosity lowers the log threshold one slog level per step, starting at warn.
	Verbosity   int  `yaml:"verbosity,omitempty"`
	CallerTrace bool `yaml:"callerTrace,omitempty"`
}

type GitHub struct {
	Account   string `yaml:"account,omitempty" default:"prakharpd"`
	RepoCount int    `yaml:"repoCount,omitempty" default:"6"`
	// BaseURL overrides the public API root.
	BaseURL string `yaml:"baseURL,omitempty"`
	// Token is only read from the environment.
	Token string `yaml:"-"`
}

type Site struct {
	Title   string `yaml:"title,omitempty" default:"Prakhar | Portfolio"`
	Owner   string `yaml:"owner,omitempty" default:"Prakhar"`
	Tagline string `yaml:"tagline,omitempty" default:"Machine learning and software engineering"`
	// About is markdown.
	About string `yaml:"about,omitempty"`
	// Breakpoint is the widest viewport using tap interaction on tiles.
	Breakpoint int           `yaml:"breakpoint,omitempty" default:"900"`
	Tiles      []models.Tile `yaml:"tiles,omitempty"`
}

// SetDefaults fills the content a fresh checkout renders with.
func (s *Site) SetDefaults() {
	if defaults.CanUpdate(s.About) {
		s.About = "Hi, I'm **Prakhar**. I build data products and the software around them."
	}
	if len(s.Tiles) == 0 {
		s.Tiles = []models.Tile{
			{Kind: models.TileExperience, Title: "Software Engineer", Summary: "Backend and data platforms", Body: "Built APIs and data pipelines in **Python** and **Go**."},
			{Kind: models.TileExperience, Title: "ML Intern", Summary: "Applied machine learning", Body: "Trained and shipped *supervised* models for ranking."},
			{Kind: models.TileSkill, Title: "Python", Body: "pandas, scikit-learn, PyTorch"},
			{Kind: models.TileSkill, Title: "Go", Body: "services, CLIs, tooling"},
			{Kind: models.TileSkill, Title: "Web", Body: "HTML, CSS, JavaScript"},
		}
	}
}

type Service struct {
	Addr    string        `yaml:"addr,omitempty" default:":8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"30s"`
	// Width is the viewport width assumed when a request does not send one.
	Width int `yaml:"width,omitempty" default:"1280"`
}

type Generate struct {
	Output string `yaml:"output,omitempty" default:"output"`
}

// SetDefaults fills every zero value with its default.
func (c *Config) SetDefaults() error {
	return errors.Join(
		defaults.Set(&c.Logging),
		defaults.Set(&c.GitHub),
		defaults.Set(&c.Site),
		defaults.Set(&c.Service),
		defaults.Set(&c.Generate),
	)
}

// Load reads path, if it exists, applies defaults, and validates the result.
func Load(path string) (*Config, error) {
	c := new(Config)
	if err := c.LoadFromFile(path); err != nil {
		return nil, err
	}
	if err := c.SetDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	return c, nil
}

// LoadFromFile decodes the YAML file at path into c. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	return nil
}

// Validate rejects values that cannot render a page.
func (c *Config) Validate() error {
	if c.GitHub.Account == "" {
		return errors.New("github.account is required")
	}
	if c.GitHub.RepoCount < 0 {
		return fmt.Errorf("github.repoCount must not be negative, got %d", c.GitHub.RepoCount)
	}
	if c.Site.Breakpoint < 1 {
		return fmt.Errorf("site.breakpoint must be at least 1, got %d", c.Site.Breakpoint)
	}
	for i, tile := range c.Site.Tiles {
		if tile.Kind != models.TileExperience && tile.Kind != models.TileSkill {
			return fmt.Errorf("site.tiles[%d]: unknown kind %q", i, tile.Kind)
		}
		if tile.Title == "" {
			return fmt.Errorf("site.tiles[%d]: title is required", i)
		}
	}
	return nil
}
