package web

import (
	"bytes"
	"restaurant-finder-service/internal/domain"
	"strings"
	"testing"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderIndex(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, PageIndex, IndexPage{
		Message: "Found 1 restaurant near your location",
		Restaurants: []domain.RankedRestaurant{{
			Restaurant: domain.Restaurant{ID: "7", Name: "Pho Saigon", Address: "Bellaire Blvd", Cuisine: "Vietnamese"},
			DistanceKm: 0.5,
			Distance:   "500m",
		}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Houston Restaurant Finder", "Pho Saigon", "500m", "Found 1 restaurant near your location"} {
		if !strings.Contains(out, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	if strings.Contains(out, "\n  ") {
		t.Errorf("expected minified output, got indentation")
	}
}

func TestRenderBlogListEmpty(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(&buf, PageBlogList, BlogListPage{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No blog posts yet. Check back soon!") {
		t.Fatalf("empty blog list text missing: %s", buf.String())
	}
}

func TestRenderBlogDetail(t *testing.T) {
	r := newTestRenderer(t)

	post := domain.BlogPost{
		ID:          "1",
		Title:       "Best Tacos in Montrose",
		Slug:        "best-tacos",
		Author:      "Maria",
		PublishedAt: "2024-03-05",
		Content:     "First paragraph.\n\nSecond paragraph.",
		Tags:        []string{"tacos"},
	}

	var buf bytes.Buffer
	err := r.Render(&buf, PageBlogDetail, BlogDetailPage{
		Post:       post,
		Restaurant: &domain.Restaurant{Name: "Montrose Tacos", Address: "Westheimer Rd"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Best Tacos in Montrose", "3/5/2024", "Featured Restaurant", "Montrose Tacos", "First paragraph.", "Second paragraph."} {
		if !strings.Contains(out, want) {
			t.Errorf("detail page missing %q", want)
		}
	}

	buf.Reset()
	if err := r.Render(&buf, PageBlogDetail, BlogDetailPage{Post: post}); err != nil {
		t.Fatalf("Render without restaurant: %v", err)
	}
	if strings.Contains(buf.String(), "Featured Restaurant") {
		t.Fatalf("featured block rendered without a restaurant")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(&buf, "missing.html", nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written on error")
	}
}
