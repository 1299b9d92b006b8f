package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"restaurant-finder-service/internal/web"
	"strings"
)

type PageRenderer interface {
	Render(w io.Writer, page string, data any) error
}

// PageHandler serves the HTML search page and the blog.
type PageHandler struct {
	Restaurants ports.RestaurantRepository
	Blogs       ports.BlogRepository
	Geocoder    ports.Geocoder
	Renderer    PageRenderer

	DefaultLimit int
}

// Index renders the nearby search page. It also catches every path not
// matched by a more specific route and answers those with the not found page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.notFound(w, r, "The page you are looking for does not exist.")
		return
	}
	if !requireGet(w, r) {
		return
	}

	q := r.URL.Query()
	page := web.IndexPage{
		Address:   strings.TrimSpace(q.Get("address")),
		Latitude:  strings.TrimSpace(q.Get("lat")),
		Longitude: strings.TrimSpace(q.Get("lon")),
	}

	params, limit, err := parseSearch(r, h.DefaultLimit)
	if err != nil {
		page.Error = err.Error()
		h.render(w, r, http.StatusBadRequest, web.PageIndex, page)
		return
	}

	res, err := services.SearchNearby(r.Context(), params, limit, h.Restaurants, h.Geocoder)
	if err != nil {
		logInternal(r, err, "Search nearby failed")
		page.Error = "Failed to fetch restaurants"
		h.render(w, r, http.StatusInternalServerError, web.PageIndex, page)
		return
	}

	page.Message = res.Message
	page.Restaurants = res.Restaurants
	h.render(w, r, http.StatusOK, web.PageIndex, page)
}

func (h *PageHandler) BlogList(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	posts, err := services.ListBlogPosts(r.Context(), h.Blogs)
	if err != nil {
		logInternal(r, err, "List blog posts failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, web.PageBlogList, web.BlogListPage{Posts: posts})
}

func (h *PageHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	slug := strings.TrimSpace(r.PathValue("slug"))
	view, err := services.GetBlogPost(r.Context(), slug, h.Blogs, h.Restaurants)
	if errors.Is(err, ports.ErrNotFound) {
		h.notFound(w, r, "That blog post could not be found.")
		return
	}
	if err != nil {
		logInternal(r, err, "Get blog post failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, web.PageBlogDetail, web.BlogDetailPage{
		Post:       view.Post,
		Restaurant: view.Restaurant,
	})
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.render(w, r, http.StatusNotFound, web.PageNotFound, web.NotFoundPage{Message: msg})
}

// render buffers the page so a template failure can still produce a 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, page, data); err != nil {
		logInternal(r, err, "Render page failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
