package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"restaurant-finder-service/internal/config"
	"restaurant-finder-service/internal/platform/db"
	"restaurant-finder-service/internal/ports"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sources bundles the repositories a command reads from.
type Sources struct {
	Restaurants ports.RestaurantRepository
	Blogs       ports.BlogRepository

	db *sql.DB
}

// Close releases the database connection, if any.
func (s *Sources) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Open returns Postgres-backed repositories when a database URL is
// configured and JSON-file repositories otherwise.
func Open(ctx context.Context, cfg config.Data) (*Sources, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL, db.DefaultPoolOptions)
		if err != nil {
			return nil, fmt.Errorf("open sources: %w", err)
		}
		log.Info().Msg("Reading restaurants and blog posts from Postgres")

		return &Sources{
			Restaurants: NewSQLRestaurantRepository(conn),
			Blogs:       NewSQLBlogRepository(conn),
			db:          conn,
		}, nil
	}

	restaurants, err := LoadRestaurantsJSON(cfg.RestaurantsPath)
	if err != nil {
		return nil, fmt.Errorf("open sources: %w", err)
	}
	blogs, err := LoadBlogsJSON(cfg.BlogsPath)
	if err != nil {
		return nil, fmt.Errorf("open sources: %w", err)
	}

	log.Info().
		Str("restaurants", cfg.RestaurantsPath).
		Int("restaurants_count", len(restaurants.restaurants)).
		Str("blogs", cfg.BlogsPath).
		Int("blogs_count", len(blogs.posts)).
		Msg("Loaded JSON datasets")

	return &Sources{Restaurants: restaurants, Blogs: blogs}, nil
}
