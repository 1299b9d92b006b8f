// Package web renders the HTML pages of the restaurant finder from embedded
// templates and minifies the output.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"restaurant-finder-service/internal/domain"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed templates
var templateFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex      = "index.html"
	PageBlogList   = "blog_list.html"
	PageBlogDetail = "blog_detail.html"
	PageNotFound   = "not_found.html"
)

var pageNames = []string{PageIndex, PageBlogList, PageBlogDetail, PageNotFound}

// IndexPage is the data of the search page.
type IndexPage struct {
	Address     string
	Latitude    string
	Longitude   string
	Message     string
	Error       string
	Restaurants []domain.RankedRestaurant
}

type BlogListPage struct {
	Posts []domain.BlogPost
}

type BlogDetailPage struct {
	Post       domain.BlogPost
	Restaurant *domain.Restaurant
}

type NotFoundPage struct {
	Message string
}

type layoutData struct {
	Style template.CSS
	Page  any
}

// Renderer holds the parsed page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	min   *minify.M
	style template.CSS
}

// NewRenderer parses every page template and minifies the shared stylesheet.
func NewRenderer() (*Renderer, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)

	styleRaw, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, fmt.Errorf("new renderer: read stylesheet: %w", err)
	}
	styleMin, err := m.String("text/css", string(styleRaw))
	if err != nil {
		return nil, fmt.Errorf("new renderer: minify stylesheet: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("new renderer: parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		min:   m,
		style: template.CSS(styleMin),
	}, nil
}

// Render executes the named page with data and writes minified HTML to w.
// Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", layoutData{Style: r.style, Page: data}); err != nil {
		return fmt.Errorf("render %s: execute: %w", page, err)
	}

	if err := r.min.Minify("text/html", w, &buf); err != nil {
		return fmt.Errorf("render %s: minify: %w", page, err)
	}
	return nil
}
