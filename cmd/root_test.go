package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	*httptest.Server
	paths   []string
	perPage []string
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.paths = append(f.paths, r.URL.Path)
		f.perPage = append(f.perPage, r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "one", "html_url": "https://github.com/octocat/one", "language": "Go"},
			{"name": "two", "html_url": "https://github.com/octocat/two", "language": "Rust"}
		]`))
	}))
	t.Cleanup(f.Close)
	return f
}

func runGenerate(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "site")

	root := New()
	root.SetArgs(append([]string{"generate", "-c", filepath.Join(dir, "absent.yaml"), "-o", out}, args...))
	require.NoError(t, root.ExecuteContext(context.Background()))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	return string(index)
}

func TestGenerateCommand(t *testing.T) {
	gh := newFakeGitHub(t)

	index := runGenerate(t, "--account", "octocat", "-n", "2", "--github-base-url", gh.URL)

	assert.Equal(t, []string{"/users/octocat/repos"}, gh.paths)
	assert.Equal(t, []string{"2"}, gh.perPage)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(index))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find(".project-tile").Length())
	assert.Equal(t, "🐹", doc.Find(".project-tile .project-logo").First().Text())
	assert.Equal(t, 3, doc.Find(".certificate-tile").Length())
}

func TestGenerateCommandEnvironment(t *testing.T) {
	gh := newFakeGitHub(t)
	t.Setenv("PORTFOLIO_ACCOUNT", "from-env")
	t.Setenv("PORTFOLIO_GITHUB_BASE_URL", gh.URL)

	runGenerate(t)

	assert.Equal(t, []string{"/users/from-env/repos"}, gh.paths)
	assert.Equal(t, []string{"6"}, gh.perPage)
}

func TestGenerateCommandConfigFile(t *testing.T) {
	gh := newFakeGitHub(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  account: from-file\n  repoCount: 4\n  baseURL: "+gh.URL+"\n"), 0o600))

	root := New()
	root.SetArgs([]string{"generate", "-c", path, "-o", filepath.Join(dir, "site")})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"/users/from-file/repos"}, gh.paths)
	assert.Equal(t, []string{"4"}, gh.perPage)
}

func TestGenerateCommandFailedFetchStillRenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	index := runGenerate(t, "--github-base-url", srv.URL)
	assert.Contains(t, index, "Unable to load projects. Please try again later.")
}

func TestInvalidConfig(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
		Args    []string
		Error   string
	}{
		{Name: "negative_breakpoint_in_file", Content: "site:\n  breakpoint: -5\n", Error: "site.breakpoint"},
		{Name: "zero_breakpoint_flag", Args: []string{"--breakpoint", "0"}, Error: "site.breakpoint"},
		{Name: "empty_account_flag", Args: []string{"--account", ""}, Error: "github.account is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "portfolio.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.Content), 0o600))

			root := New()
			root.SetArgs(append([]string{"generate", "-c", path, "-o", filepath.Join(dir, "site")}, tc.Args...))
			root.SetErr(&strings.Builder{})
			err := root.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.Error)
			assert.NoDirExists(t, filepath.Join(dir, "site"))
		})
	}
}
