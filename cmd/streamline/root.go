package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/alorle/streamline/internal/adapter/driven"
	"github.com/alorle/streamline/internal/application"
	"github.com/alorle/streamline/internal/m3u"
)

// cliContext carries the configuration shared by all commands.
// Flags override values read from the environment.
type cliContext struct {
	cfg      config
	logLevel string
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &cliContext{cfg: loadConfig()}

	rootCmd := &cobra.Command{
		Use:           "streamline",
		Short:         "Normalized IPTV channel catalog from a remote M3U playlist",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("log-level") {
				level, ok := parseLogLevel(ctx.logLevel)
				if !ok {
					return fmt.Errorf("invalid log level %q", ctx.logLevel)
				}
				ctx.cfg.LogLevel = level
			}
			ctx.logger = newLogger(cmd.ErrOrStderr(), ctx.cfg.LogLevel)
			slog.SetDefault(ctx.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.cfg.PlaylistURL, "playlist-url", ctx.cfg.PlaylistURL, "Remote M3U playlist URL")
	flags.DurationVar(&ctx.cfg.FetchTimeout, "timeout", ctx.cfg.FetchTimeout, "Playlist download timeout")
	flags.StringVar(&ctx.logLevel, "log-level", ctx.cfg.LogLevel.String(), "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newCategoriesCommand(ctx))

	return rootCmd
}

// newCatalog wires the playlist source, parser and catalog service.
func (c *cliContext) newCatalog(opts ...application.CatalogOption) *application.CatalogService {
	client := &http.Client{Timeout: c.cfg.FetchTimeout}
	source := driven.NewPlaylistHTTPSource(c.cfg.PlaylistURL, client)
	return application.NewCatalogService(source, m3u.NewParser(), c.logger, opts...)
}

// formatTime renders t for human output, or "-" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
