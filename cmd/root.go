// Package cmd provides the entrypoint for the portfolio cli.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/crawler"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/models"
	"github.com/prakharpd/portfolio/internal/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilePath string
	cfg            *config.Config
	logger         *slog.Logger
)

// New returns the root command for the portfolio.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Render a personal portfolio page from GitHub and static content",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			c, err := config.Load(configFilePath)
			if err != nil {
				return err
			}
			applyEnvMap(c, envMapString)
			applyEnvMap(c, envMapInt)
			applyEnvMap(c, envMapBool)
			applyEnvMap(c, genEnvMapString)
			applyEnvMap(c, svcEnvMapString)
			applyEnvMap(c, svcEnvMapInt)
			applyEnvMap(c, svcEnvMapDuration)
			if err := c.Validate(); err != nil {
				return err
			}
			cfg = c
			logger = helpers.NewLogger(cfg.Logging.Verbosity, cfg.Logging.CallerTrace)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "portfolio.yaml", "path to the configuration file")

	viper.SetEnvKeyReplacer(replacer)
	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapInt)
	bindEnvMap(cmd, envMapBool)

	cmd.AddCommand(
		cmdGenerate(),
		cmdServe(),
	)

	return cmd
}

// newSite builds the renderer and the page dependencies from the loaded configuration.
func newSite(ctx context.Context) (*site.Renderer, site.Deps, error) {
	client, err := crawler.New(ctx,
		crawler.WithToken(cfg.GitHub.Token),
		crawler.WithBaseURL(cfg.GitHub.BaseURL),
		crawler.WithLogger(logger.With("component", "crawler")))
	if err != nil {
		return nil, site.Deps{}, err
	}

	renderer, err := site.NewRenderer(cfg.Site)
	if err != nil {
		return nil, site.Deps{}, fmt.Errorf("failed to prepare page: %w", err)
	}

	return renderer, site.Deps{
		Lister:       client,
		Account:      cfg.GitHub.Account,
		RepoCount:    cfg.GitHub.RepoCount,
		Certificates: models.Certificates,
		Breakpoint:   cfg.Site.Breakpoint,
		Logger:       logger,
	}, nil
}
