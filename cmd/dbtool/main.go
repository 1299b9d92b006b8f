package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/adapters/repositories"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/logger"
	"restaurant-finder-service/internal/platform/db"
	"time"

	"github.com/rs/zerolog/log"
)

// dbtool creates the Postgres schema and seeds it from the JSON datasets.
func main() {
	config.LoadDotEnv()
	logger.Logger{
		Level:  config.Get("LOG_LEVEL", "info"),
		Format: config.Get("LOG_FORMAT", "console"),
	}.Setup()

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Database setup failed")
	}
}

func run(ctx context.Context) error {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL, db.DefaultPoolOptions)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	restaurantsPath := config.Get("RESTAURANTS_PATH", "data/restaurants.json")
	blogsPath := config.Get("BLOGS_PATH", "data/blogs.json")
	return initAndSeed(ctx, conn, restaurantsPath, blogsPath)
}

func initAndSeed(ctx context.Context, conn *sql.DB, restaurantsPath, blogsPath string) error {
	log.Info().Msg("Initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Msg("Schema ready")

	// Go through the JSON repositories so records are validated before insert.
	restaurants, err := repositories.LoadRestaurantsJSON(restaurantsPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	rs, err := restaurants.ListRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	blogs, err := repositories.LoadBlogsJSON(blogsPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	posts, err := blogs.ListBlogPosts(ctx)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedRestaurants(ctx, conn, rs); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedBlogPosts(ctx, conn, posts); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Info().
		Int("restaurants", len(rs)).
		Int("blog_posts", len(posts)).
		Msg("Seeding complete")
	return nil
}
