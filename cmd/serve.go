package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prakharpd/portfolio/internal/config"
	"github.com/prakharpd/portfolio/internal/helpers"
	"github.com/prakharpd/portfolio/internal/site"
	"github.com/spf13/cobra"
)

var svcEnvMapString = []boundEnvVar[string]{
	{
		Name:        "addr",
		Description: "The address to serve the page on",
		Short:       helpers.Ptr("H"),
		Target:      func(c *config.Config) *string { return &c.Service.Addr },
	},
}

var svcEnvMapInt = []boundEnvVar[int]{
	{
		Name:        "width",
		Description: "Viewport width assumed when a request sends none",
		Target:      func(c *config.Config) *int { return &c.Service.Width },
	},
}

var svcEnvMapDuration = []boundEnvVar[time.Duration]{
	{
		Name:        "timeout",
		Description: "The timeout for HTTP I/O operations",
		Short:       helpers.Ptr("t"),
		Target:      func(c *config.Config) *time.Duration { return &c.Service.Timeout },
	},
}

func cmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s", "server"},
		Short:   "Serve the portfolio page, rebuilt on every request",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			renderer, deps, err := newSite(ctx)
			if err != nil {
				return err
			}

			srv := site.NewServer(renderer, deps,
				site.WithDefaultWidth(cfg.Service.Width),
				site.WithServerLogger(logger.With("component", "server")))

			s := &http.Server{
				Handler:      srv.Mux(),
				Addr:         cfg.Service.Addr,
				WriteTimeout: cfg.Service.Timeout,
				ReadTimeout:  cfg.Service.Timeout,
				IdleTimeout:  cfg.Service.Timeout,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Serving...", "address", s.Addr, "timeout", cfg.Service.Timeout.String())
				errCh <- s.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("Shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.Timeout)
				defer cancel()
				if err := s.Shutdown(shutdownCtx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}
	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapInt)
	bindEnvMap(cmd, svcEnvMapDuration)
	return cmd
}
