package cmd

import (
	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/helpers"
)

var envMapString = []boundEnvVar[string]{
	{
		Name:        "account",
		Description: "The GitHub account whose repositories are listed",
		Short:       helpers.Ptr("a"),
		Target:      func(c *config.Config) *string { return &c.GitHub.Account },
	},
	{
		Name:        "github-token",
		Description: "Optional token used for the GitHub API (raises the rate limit)",
		Env:         helpers.Ptr("GITHUB_TOKEN"),
		Target:      func(c *config.Config) *string { return &c.GitHub.Token },
	},
	{
		Name:        "github-base-url",
		Description: "Override the GitHub API root",
		Target:      func(c *config.Config) *string { return &c.GitHub.BaseURL },
	},
}

var envMapInt = []boundEnvVar[int]{
	{
		Name:        "repo-count",
		Description: "How many recently updated repositories to show",
		Short:       helpers.Ptr("n"),
		Target:      func(c *config.Config) *int { return &c.GitHub.RepoCount },
	},
	{
		Name:        "breakpoint",
		Description: "Widest viewport, in pixels, using tap interaction on tiles",
		Target:      func(c *config.Config) *int { return &c.Site.Breakpoint },
	},
	{
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
		Count:       true,
		Target:      func(c *config.Config) *int { return &c.Logging.Verbosity },
	},
}

var envMapBool = []boundEnvVar[bool]{
	{
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
		Target:      func(c *config.Config) *bool { return &c.Logging.CallerTrace },
	},
}
