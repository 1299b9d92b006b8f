package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"restaurant-finder-service/internal/adapters/geocode"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/api"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/logger"
	"restaurant-finder-service/internal/web"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`
	Data   config.Data   `group:"Data options"`

	Addr  string `short:"a" long:"addr"  env:"LISTEN_ADDRESS" description:"Address to listen on"                      default:"0.0.0.0"`
	Port  int    `short:"p" long:"port"  env:"PORT"           description:"Port to listen on"                         default:"8080"`
	Limit int    `short:"l" long:"limit" env:"SEARCH_LIMIT"   description:"Default number of search results, 0 for all" default:"0"`
}

// main is the application composition root.
// It wires concrete adapters (JSON or Postgres, mock geocoder) behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		stop()
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}

func run(ctx context.Context, opts Options) error {
	sources, err := repositories.Open(ctx, opts.Data)
	if err != nil {
		return fmt.Errorf("open data sources: %w", err)
	}
	defer sources.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("parse page templates: %w", err)
	}

	router := api.NewRouter(api.Deps{
		Restaurants:  sources.Restaurants,
		Blogs:        sources.Blogs,
		Geocoder:     geocode.NewMockGeocoder(),
		Renderer:     renderer,
		DefaultLimit: opts.Limit,
	})

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", listenAddr).Int("default_limit", opts.Limit).Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
