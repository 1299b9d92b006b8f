package ports

import (
	"context"
	"restaurant-finder-service/internal/domain"
)

// Port: a boundary for retrieving BlogPost entities from a data source.
type BlogRepository interface {
	// Retrieve all blog posts in source order.
	ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	// Retrieve one post by slug, or ErrNotFound.
	GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
}
