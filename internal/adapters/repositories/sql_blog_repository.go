package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
)

const blogColumns = `
	id, restaurant_id, title, slug, excerpt, content,
	author, published_at, featured_image, tags
`

// Postgres-backed implementation of the BlogRepository port.
type SQLBlogRepository struct{ DB *sql.DB }

func NewSQLBlogRepository(db *sql.DB) *SQLBlogRepository {
	return &SQLBlogRepository{DB: db}
}

// Return all blog posts in their seeded order.
func (s *SQLBlogRepository) ListBlogPosts(ctx context.Context) (_ []domain.BlogPost, err error) {
	defer obs.Time(ctx, "blogs.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql blog repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+blogColumns+` FROM blog_posts ORDER BY position, id;`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: query blog_posts table: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0, 16)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list blog posts: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blog posts: row iteration: %w", err)
	}

	return posts, nil
}

func (s *SQLBlogRepository) GetBlogPostBySlug(ctx context.Context, slug string) (_ *domain.BlogPost, err error) {
	defer obs.Time(ctx, "blogs.sql.GetBySlug")(&err)

	if s.DB == nil {
		return nil, errors.New("sql blog repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1;`, slug)
	p, err := scanBlogPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get blog post %q: %w", slug, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post %q: %w", slug, err)
	}

	return &p, nil
}

func scanBlogPost(row rowScanner) (domain.BlogPost, error) {
	var p domain.BlogPost
	var tags string
	if err := row.Scan(
		&p.ID, &p.RestaurantID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.Author, &p.PublishedAt, &p.FeaturedImage, &tags,
	); err != nil {
		return domain.BlogPost{}, err
	}

	decoded, err := decodeTags(tags)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("slug=%q: %w", p.Slug, err)
	}
	p.Tags = decoded

	return p, nil
}
