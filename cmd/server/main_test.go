package main

import (
	"context"
	"path/filepath"
	"restaurant-finder-service/internal/config"
	"strings"
	"testing"
)

func TestRunFailsOnMissingDataset(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		Data: config.Data{
			RestaurantsPath: filepath.Join(dir, "restaurants.json"),
			BlogsPath:       filepath.Join(dir, "blogs.json"),
		},
		Addr: "127.0.0.1",
		Port: 0,
	}

	err := run(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "open data sources") {
		t.Fatalf("run() error = %v, want open data sources failure", err)
	}
}
