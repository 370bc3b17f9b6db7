package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"artisthub/internal/app/artists"
	"artisthub/internal/config"
	"artisthub/internal/http/middleware"
	"artisthub/internal/httpapi"
)

func newHTTPHandler(cfg *config.Config, artistStore artists.Store) http.Handler {
	artistSvc := artists.New(artistStore)
	routes := httpapi.New(artistSvc).Routes()

	handler := middleware.CORS(cfg.CORS.AllowedOrigins)(routes)
	handler = middleware.Recovery()(handler)
	return middleware.RequestLogging()(handler)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds.
func serve(addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("artist API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("server exited")
	return nil
}
