// Package config loads environment configuration shared by the commands.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already present in the environment.
// A missing file is not an error.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Err(err).Msg("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of the environment variable key, or fallback
// when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Data holds the locations of the static JSON datasets.
type Data struct {
	RestaurantsPath string `long:"restaurants" env:"RESTAURANTS_PATH" description:"Path to restaurants.json" default:"data/restaurants.json"`
	BlogsPath       string `long:"blogs"       env:"BLOGS_PATH"       description:"Path to blogs.json"       default:"data/blogs.json"`
	DatabaseURL     string `long:"database-url" env:"DATABASE_URL"    description:"Read restaurants and blog posts from Postgres instead of JSON"`
}
