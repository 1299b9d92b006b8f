package services

import (
	"context"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
	"strings"
)

// BlogPostView is a post together with the restaurant it features.
// Restaurant is nil when the post references no known restaurant.
type BlogPostView struct {
	Post       domain.BlogPost
	Restaurant *domain.Restaurant
}

// ListBlogPosts returns every post in repository order.
func ListBlogPosts(ctx context.Context, blogs ports.BlogRepository) ([]domain.BlogPost, error) {
	posts, err := blogs.ListBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// GetBlogPost loads a post by slug along with its featured restaurant.
// An unknown slug yields ports.ErrNotFound; a missing restaurant does not.
func GetBlogPost(
	ctx context.Context,
	slug string,
	blogs ports.BlogRepository,
	restaurants ports.RestaurantRepository,
) (_ *BlogPostView, err error) {
	defer obs.Time(ctx, "services.GetBlogPost")(&err)

	post, err := blogs.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}

	view := &BlogPostView{Post: *post}
	if strings.TrimSpace(post.RestaurantID) == "" {
		return view, nil
	}

	r, err := restaurants.GetRestaurant(ctx, post.RestaurantID)
	if errors.Is(err, ports.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post %q: featured restaurant: %w", slug, err)
	}
	view.Restaurant = r

	return view, nil
}

// BlogSlugs lists the slug of every post, in repository order.
func BlogSlugs(ctx context.Context, blogs ports.BlogRepository) ([]string, error) {
	posts, err := blogs.ListBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog slugs: %w", err)
	}

	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}
