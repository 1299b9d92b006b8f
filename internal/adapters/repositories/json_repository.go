package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/ports"
	"strings"

	"github.com/go-playground/validator/v10"
)

type restaurantFile struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
}

type blogFile struct {
	Blogs []domain.BlogPost `json:"blogs"`
}

// JSONRestaurantRepository serves restaurants loaded once from a JSON file.
// It is read-only after construction and safe for concurrent use.
type JSONRestaurantRepository struct {
	restaurants []domain.Restaurant
	byID        map[string]int
}

// JSONBlogRepository serves blog posts loaded once from a JSON file.
// It is read-only after construction and safe for concurrent use.
type JSONBlogRepository struct {
	posts  []domain.BlogPost
	bySlug map[string]int
}

// Build a restaurant repository from already-decoded records.
func NewJSONRestaurantRepository(restaurants []domain.Restaurant) (*JSONRestaurantRepository, error) {
	v := validator.New()
	byID := make(map[string]int, len(restaurants))
	for i, r := range restaurants {
		if err := v.Struct(r); err != nil {
			return nil, fmt.Errorf("restaurant repository: validate item at index %d (id=%q): %w", i, r.ID, err)
		}
		if _, ok := byID[r.ID]; ok {
			return nil, fmt.Errorf("restaurant repository: duplicate id %q at index %d", r.ID, i)
		}
		byID[r.ID] = i
	}

	return &JSONRestaurantRepository{restaurants: restaurants, byID: byID}, nil
}

// Build a blog repository from already-decoded records.
func NewJSONBlogRepository(posts []domain.BlogPost) (*JSONBlogRepository, error) {
	v := validator.New()
	bySlug := make(map[string]int, len(posts))
	for i, p := range posts {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("blog repository: validate item at index %d (id=%q): %w", i, p.ID, err)
		}
		if _, ok := bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("blog repository: duplicate slug %q at index %d", p.Slug, i)
		}
		bySlug[p.Slug] = i
	}

	return &JSONBlogRepository{posts: posts, bySlug: bySlug}, nil
}

// Load restaurants from a {"restaurants": [...]} JSON file.
func LoadRestaurantsJSON(path string) (*JSONRestaurantRepository, error) {
	data, err := ReadRestaurantsJSON(path)
	if err != nil {
		return nil, err
	}
	return NewJSONRestaurantRepository(data)
}

// Load blog posts from a {"blogs": [...]} JSON file.
func LoadBlogsJSON(path string) (*JSONBlogRepository, error) {
	data, err := ReadBlogsJSON(path)
	if err != nil {
		return nil, err
	}
	return NewJSONBlogRepository(data)
}

// Decode the restaurant records of a JSON file without validating them.
func ReadRestaurantsJSON(path string) ([]domain.Restaurant, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: read %q: %w", path, err)
	}

	var file restaurantFile
	if err := json.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("load restaurants: parse json: %w", err)
	}

	return file.Restaurants, nil
}

// Decode the blog records of a JSON file without validating them.
func ReadBlogsJSON(path string) ([]domain.BlogPost, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load blogs: read %q: %w", path, err)
	}

	var file blogFile
	if err := json.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("load blogs: parse json: %w", err)
	}

	return file.Blogs, nil
}

// Return a copy of all restaurants in file order.
func (s *JSONRestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out, nil
}

func (s *JSONRestaurantRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	i, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("get restaurant %q: %w", id, ports.ErrNotFound)
	}
	r := s.restaurants[i]
	return &r, nil
}

// Return a copy of all blog posts in file order.
func (s *JSONBlogRepository) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	out := make([]domain.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *JSONBlogRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("get blog post %q: %w", slug, ports.ErrNotFound)
	}
	p := s.posts[i]
	return &p, nil
}
