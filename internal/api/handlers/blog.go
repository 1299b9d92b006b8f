package handlers

import (
	"net/http"
	"restaurant-finder-service/internal/api/dto"
	"restaurant-finder-service/internal/ports"
	"restaurant-finder-service/internal/services"
	"strings"
)

type BlogHandler struct {
	Blogs ports.BlogRepository
}

// List returns every post, newest first, without its content.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	posts, err := services.ListBlogPosts(r.Context(), h.Blogs)
	if err != nil {
		logInternal(r, err, "List blog posts failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBlogPostsResponse{Blogs: make([]dto.BlogPostSummary, 0, len(posts))}
	for _, p := range posts {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		res.Blogs = append(res.Blogs, dto.BlogPostSummary{
			ID:            p.ID,
			RestaurantID:  p.RestaurantID,
			Title:         p.Title,
			Slug:          p.Slug,
			Excerpt:       p.Excerpt,
			Author:        p.Author,
			PublishedAt:   p.PublishedAt,
			PublishedDate: p.PublishedDate(),
			FeaturedImage: p.FeaturedImage,
			Tags:          tags,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Sitemap lists the blog post paths as plain text, one per line.
func (h *BlogHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	slugs, err := services.BlogSlugs(r.Context(), h.Blogs)
	if err != nil {
		logInternal(r, err, "List blog slugs failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var b strings.Builder
	b.WriteString("/\n/blog\n")
	for _, slug := range slugs {
		b.WriteString("/blog/")
		b.WriteString(slug)
		b.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
