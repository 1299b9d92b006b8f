package api

import (
	"net/http"
	"restaurant-finder-service/internal/api/handlers"
	"restaurant-finder-service/internal/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Restaurants ports.RestaurantRepository
	Blogs       ports.BlogRepository
	Geocoder    ports.Geocoder
	Renderer    handlers.PageRenderer

	// DefaultLimit caps search results when the request has no limit; 0 means all.
	DefaultLimit int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	restHandler := &handlers.RestaurantHandler{
		Repo:         d.Restaurants,
		Geocoder:     d.Geocoder,
		DefaultLimit: d.DefaultLimit,
	}
	blogHandler := &handlers.BlogHandler{Blogs: d.Blogs}
	pageHandler := &handlers.PageHandler{
		Restaurants:  d.Restaurants,
		Blogs:        d.Blogs,
		Geocoder:     d.Geocoder,
		Renderer:     d.Renderer,
		DefaultLimit: d.DefaultLimit,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/restaurants", restHandler.Search)
	mux.HandleFunc("/api/restaurants.geojson", restHandler.GeoJSON)
	mux.HandleFunc("/api/restaurants/{id}", restHandler.Get)
	mux.HandleFunc("/api/blog", blogHandler.List)
	mux.HandleFunc("/sitemap.txt", blogHandler.Sitemap)
	mux.HandleFunc("/blog", pageHandler.BlogList)
	mux.HandleFunc("/blog/{slug}", pageHandler.BlogPost)
	mux.HandleFunc("/", pageHandler.Index)

	return requestIDMiddleware(loggingMiddleware(mux))
}
