package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hijri-calendar/internal/api"
	"github.com/smokyabdulrahman/hijri-calendar/internal/config"
	"github.com/smokyabdulrahman/hijri-calendar/internal/i18n"
	"github.com/smokyabdulrahman/hijri-calendar/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar web pages",
		Long: "Start an HTTP server with the role selection, calendar, today and convert pages.\n" +
			"Stops gracefully on interrupt.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides $"+config.EnvListenAddr+" and config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	srv, err := newHTTPServer(cfg)
	if err != nil {
		return err
	}
	return serve(cmd.Context(), srv)
}

// newHTTPServer wires the page server for cfg without starting it.
func newHTTPServer(cfg *config.Config) (*http.Server, error) {
	bundle, err := i18n.Load(cfg.Language)
	if err != nil {
		return nil, err
	}

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	client := api.NewClient(cfg.APIURL)
	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           web.NewServer(client, bundle).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// serve runs srv until it fails or ctx is done, then shuts it down.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
