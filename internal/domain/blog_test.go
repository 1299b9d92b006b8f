package domain

import (
	"reflect"
	"testing"
)

func TestBlogPostPublishedDate(t *testing.T) {
	tests := []struct {
		name        string
		publishedAt string
		want        string
	}{
		{name: "date only", publishedAt: "2024-03-05", want: "3/5/2024"},
		{name: "rfc3339", publishedAt: "2024-11-20T10:00:00Z", want: "11/20/2024"},
		{name: "local timestamp", publishedAt: "2025-01-09T08:30:00", want: "1/9/2025"},
		{name: "unparseable", publishedAt: "last spring", want: "last spring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BlogPost{PublishedAt: tt.publishedAt}
			if got := b.PublishedDate(); got != tt.want {
				t.Fatalf("PublishedDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlogPostParagraphs(t *testing.T) {
	b := BlogPost{Content: "First paragraph.\n\nSecond paragraph\nwith a line break.\n\n\n\nThird."}

	got := b.Paragraphs()
	want := []string{"First paragraph.", "Second paragraph\nwith a line break.", "", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Paragraphs() = %q, want %q", got, want)
	}
}

func TestSearchParamsHasCoordinates(t *testing.T) {
	lat, lon := 29.7, -95.3

	if (SearchParams{}).HasCoordinates() {
		t.Errorf("empty params should not have coordinates")
	}
	if (SearchParams{Latitude: &lat}).HasCoordinates() {
		t.Errorf("latitude alone should not count as coordinates")
	}
	if !(SearchParams{Latitude: &lat, Longitude: &lon}).HasCoordinates() {
		t.Errorf("latitude and longitude should count as coordinates")
	}
}
