// Package crawler lists an account's repositories through the GitHub REST API.
package crawler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/pkg/errors"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/models"
	"golang.org/x/oauth2"
)

// DefaultRepoCount is how many repositories the portfolio shows.
const DefaultRepoCount = 6

// ErrNoAccount is returned when no account is named. GitHub would otherwise
// answer with the token owner's repositories, private ones included.
var ErrNoAccount = errors.New("no GitHub account given")

// sortUpdated orders repositories by last update, newest first.
const sortUpdated = "updated"

// Client wraps a go-github client.
type Client struct {
	gh      *github.Client
	token   string
	baseURL string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with a personal access token. Public
// listings work without one, at a lower rate limit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithBaseURL points the client at another API root (a test server or GitHub Enterprise).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New builds a Client.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := new(Client)
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = helpers.NewNoopLogger()
	}

	var httpClient *http.Client
	if c.token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: c.token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	c.gh = github.NewClient(httpClient)

	if c.baseURL != "" {
		base := c.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GitHub API base URL %q", c.baseURL)
		}
		c.gh.BaseURL = u
	}
	return c, nil
}

// ListRecent returns the account's count most recently updated repositories.
// Only the first page is read; any non-2xx answer is an error.
func (c *Client) ListRecent(ctx context.Context, account string, count int) ([]models.Repository, error) {
	if account == "" {
		return nil, ErrNoAccount
	}
	if count <= 0 {
		count = DefaultRepoCount
	}
	c.logger.Debug("listing repositories", slog.String("account", account), slog.Int("count", count))

	opt := &github.RepositoryListOptions{
		Sort:        sortUpdated,
		ListOptions: github.ListOptions{PerPage: count},
	}
	repos, resp, err := c.gh.Repositories.List(ctx, account, opt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list repositories for %s", account)
	}
	if resp != nil && resp.Rate.Limit > 0 {
		c.logger.Debug("github rate limit", slog.Int("remaining", resp.Rate.Remaining), slog.Int("limit", resp.Rate.Limit))
	}

	out := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		out = append(out, toModel(repo))
	}
	return out, nil
}

func toModel(repo *github.Repository) models.Repository {
	return models.Repository{
		Name:        repo.GetName(),
		HTMLURL:     repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Description: repo.GetDescription(),
	}
}
