package domain

import (
	"strings"
	"time"
)

// BlogPost is a published article, optionally featuring one restaurant.
type BlogPost struct {
	ID            string   `json:"id" validate:"required"`
	RestaurantID  string   `json:"restaurantId"`
	Title         string   `json:"title" validate:"required"`
	Slug          string   `json:"slug" validate:"required"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	PublishedAt   string   `json:"publishedAt"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags"`
}

var publishedLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// PublishedTime parses PublishedAt. ok is false when no known layout matches.
func (b BlogPost) PublishedTime() (t time.Time, ok bool) {
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, b.PublishedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PublishedDate renders the publish date as M/D/YYYY.
// Unparseable values are returned unchanged.
func (b BlogPost) PublishedDate() string {
	t, ok := b.PublishedTime()
	if !ok {
		return b.PublishedAt
	}
	return t.Format("1/2/2006")
}

// Paragraphs splits the content on blank lines ("\n\n"). Runs of more than
// one blank line yield empty paragraphs.
func (b BlogPost) Paragraphs() []string {
	return strings.Split(b.Content, "\n\n")
}
