package geo

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats supported by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes fc to w as indented JSON or as YAML.
func Encode(w io.Writer, fc GeoJSONFeatureCollection, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fc); err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return fmt.Errorf("encode geojson yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode geojson yaml: %w", err)
		}
	default:
		return fmt.Errorf("encode geojson: unsupported format %q", format)
	}
	return nil
}
