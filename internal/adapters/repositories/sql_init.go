package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"strings"
)

// Initialize the Postgres schema for restaurants and blog posts.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRestaurantsQuery := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		cuisine TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_range TEXT NOT NULL DEFAULT '',
		opening_hours TEXT NOT NULL DEFAULT '',
		closing_hours TEXT NOT NULL DEFAULT '',
		operating_hours TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		vegetarian_options TEXT NOT NULL DEFAULT '',
		signature_dishes TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		special_features TEXT NOT NULL DEFAULT ''
	);
	`

	createBlogPostsQuery := `
	CREATE TABLE IF NOT EXISTS blog_posts (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		published_at TEXT NOT NULL DEFAULT '',
		featured_image TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		position INTEGER NOT NULL DEFAULT 0
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_blog_posts_restaurant_id
	ON blog_posts(restaurant_id);
	`

	statements := []string{
		createRestaurantsQuery,
		createBlogPostsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Upsert restaurants into the database. Records should already be validated.
func SeedRestaurants(ctx context.Context, db *sql.DB, restaurants []domain.Restaurant) error {
	if db == nil {
		return errors.New("seed restaurants: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed restaurants: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO restaurants (
		id, name, address, cuisine, rating, price_range,
		opening_hours, closing_hours, operating_hours,
		latitude, longitude, phone, description,
		vegetarian_options, signature_dishes, website, special_features
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		address = EXCLUDED.address,
		cuisine = EXCLUDED.cuisine,
		rating = EXCLUDED.rating,
		price_range = EXCLUDED.price_range,
		opening_hours = EXCLUDED.opening_hours,
		closing_hours = EXCLUDED.closing_hours,
		operating_hours = EXCLUDED.operating_hours,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		phone = EXCLUDED.phone,
		description = EXCLUDED.description,
		vegetarian_options = EXCLUDED.vegetarian_options,
		signature_dishes = EXCLUDED.signature_dishes,
		website = EXCLUDED.website,
		special_features = EXCLUDED.special_features;
	`)
	if err != nil {
		return fmt.Errorf("seed restaurants: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range restaurants {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("seed restaurants: item at index %d: id cannot be empty", i+1)
		}

		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Name, r.Address, r.Cuisine, r.Rating, r.PriceRange,
			r.OpeningHours, r.ClosingHours, r.OperatingHours,
			r.Latitude, r.Longitude, r.Phone, r.Description,
			r.VegetarianOptions, r.SignatureDishes, r.Website, r.SpecialFeatures,
		); err != nil {
			return fmt.Errorf("seed restaurants: insert id=%q: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed restaurants: commit tx: %w", err)
	}

	return nil
}

// Upsert blog posts into the database, remembering their file order.
func SeedBlogPosts(ctx context.Context, db *sql.DB, posts []domain.BlogPost) error {
	if db == nil {
		return errors.New("seed blog posts: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed blog posts: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO blog_posts (
		id, restaurant_id, title, slug, excerpt, content,
		author, published_at, featured_image, tags, position
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE
	SET restaurant_id = EXCLUDED.restaurant_id,
		title = EXCLUDED.title,
		slug = EXCLUDED.slug,
		excerpt = EXCLUDED.excerpt,
		content = EXCLUDED.content,
		author = EXCLUDED.author,
		published_at = EXCLUDED.published_at,
		featured_image = EXCLUDED.featured_image,
		tags = EXCLUDED.tags,
		position = EXCLUDED.position;
	`)
	if err != nil {
		return fmt.Errorf("seed blog posts: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range posts {
		if strings.TrimSpace(p.Slug) == "" {
			return fmt.Errorf("seed blog posts: item at index %d: slug cannot be empty", i+1)
		}

		tags, err := encodeTags(p.Tags)
		if err != nil {
			return fmt.Errorf("seed blog posts: slug=%q: %w", p.Slug, err)
		}

		if _, err := stmt.ExecContext(ctx,
			p.ID, p.RestaurantID, p.Title, p.Slug, p.Excerpt, p.Content,
			p.Author, p.PublishedAt, p.FeaturedImage, tags, i,
		); err != nil {
			return fmt.Errorf("seed blog posts: insert slug=%q: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed blog posts: commit tx: %w", err)
	}

	return nil
}

// Tags are stored as a JSON array in a TEXT column.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if strings.TrimSpace(raw) == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}
