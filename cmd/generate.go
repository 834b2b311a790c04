package cmd

import (
	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/site"
	"github.com/spf13/cobra"
)

var genEnvMapString = []boundEnvVar[string]{
	{
		Name:        "output",
		Description: "Directory the generated site is written to",
		Short:       helpers.Ptr("o"),
		Target:      func(c *config.Config) *string { return &c.Generate.Output },
	},
}

func cmdGenerate() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "build"},
		Short:   "Write the portfolio page and stylesheet to a directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer, deps, err := newSite(cmd.Context())
			if err != nil {
				return err
			}
			return site.Generate(cmd.Context(), renderer, cfg.Generate.Output, deps)
		},
	}
	bindEnvMap(cmd, genEnvMapString)
	return cmd
}
