package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"restaurant-finder-service/internal/adapters/geocode"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/geo"
	"restaurant-finder-service/internal/logger"
	"restaurant-finder-service/internal/services"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`
	Data   config.Data   `group:"Data options"`

	Address string  `short:"q" long:"address" description:"Neighborhood, landmark or zip code to search near"`
	Lat     float64 `long:"lat" description:"Origin latitude (requires --lon)"`
	Lon     float64 `long:"lon" description:"Origin longitude (requires --lat)"`
	Limit   int     `short:"n" long:"limit" description:"Number of restaurants to export, 0 for all" default:"10"`
	Format  string  `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Out     string  `short:"o" long:"out" description:"Output file, stdout when empty"`
}

// nearby exports the restaurants closest to an origin as GeoJSON.
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

	params := domain.SearchParams{Address: opts.Address}
	if parser.FindOptionByLongName("lat").IsSet() && parser.FindOptionByLongName("lon").IsSet() {
		params.Latitude = &opts.Lat
		params.Longitude = &opts.Lon
	}

	if err := run(context.Background(), opts, params); err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}
}

func run(ctx context.Context, opts Options, params domain.SearchParams) error {
	sources, err := repositories.Open(ctx, opts.Data)
	if err != nil {
		return err
	}
	defer sources.Close()

	res, err := services.SearchNearby(ctx, params, opts.Limit, sources.Restaurants, geocode.NewMockGeocoder())
	if err != nil {
		return err
	}

	log.Info().
		Float64("lat", res.Origin.Latitude).
		Float64("lon", res.Origin.Longitude).
		Str("source", string(res.Source)).
		Msg(res.Message)

	var w io.Writer = os.Stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := geo.Encode(w, geo.RankedFeatureCollection(res.Restaurants), opts.Format); err != nil {
		return err
	}

	if opts.Out != "" {
		log.Info().Str("path", opts.Out).Int("features", len(res.Restaurants)).Msg("GeoJSON written")
	}
	return nil
}
