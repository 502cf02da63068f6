// pkg/feature/feature.go - GeoJSON feature loading and structural validation
package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// InvalidGeoJSONError reports a feature that failed the structural GeoJSON
// check, carrying the offending document and its position in the batch.
type InvalidGeoJSONError struct {
	Index   int
	Feature json.RawMessage
	Reason  string
}

func (e *InvalidGeoJSONError) Error() string {
	return fmt.Sprintf("feature at index %d is not valid GeoJSON data: %s", e.Index, e.Reason)
}

// ValidatePath fails fast when a referenced feature file does not exist.
func ValidatePath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input should be a valid path: %s", path)
	}
	return nil
}

// Load reads a GeoJSON document from disk. The path is checked before any
// read is attempted.
func Load(path string) (json.RawMessage, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(abspath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Validate runs the shallow structural check on a single feature: the
// document must carry "type", "geometry" and "properties", the geometry must
// carry "type" and "coordinates", and the coordinates must be an array. Deep
// geometric validity (ring closure etc.) is left to the tiling library.
// Failures are logged with the feature's position in the batch before the
// typed error is returned.
func Validate(index int, data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding feature %d: %w", index, err)
	}

	if err := checkStructure(doc); err != nil {
		log.Error().Int("feature", index).Msg(err.Error())
		return &InvalidGeoJSONError{Index: index, Feature: data, Reason: err.Error()}
	}
	return nil
}

// ValidateFiles checks every path and feature in a batch. Unlike the area
// pipeline it does not stop at the first failure: every file is checked and
// all failures are reported together.
func ValidateFiles(paths []string) error {
	var errs []error
	for i, path := range paths {
		raw, err := Load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := Validate(i, raw); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkStructure(doc map[string]interface{}) error {
	for _, key := range []string{"type", "geometry", "properties"} {
		if _, ok := doc[key]; !ok {
			return fmt.Errorf("missing required member %q", key)
		}
	}

	if _, ok := doc["type"].(string); !ok {
		return errors.New(`member "type" must be a string`)
	}

	geometry, ok := doc["geometry"].(map[string]interface{})
	if !ok {
		return errors.New(`member "geometry" must be an object`)
	}
	if _, ok := geometry["type"].(string); !ok {
		return errors.New(`geometry must carry a string "type"`)
	}
	coordinates, ok := geometry["coordinates"]
	if !ok {
		return errors.New(`geometry must carry "coordinates"`)
	}
	if _, ok := coordinates.([]interface{}); !ok {
		return errors.New(`geometry "coordinates" must be an array`)
	}

	if _, ok := doc["properties"].(map[string]interface{}); !ok {
		return errors.New(`member "properties" must be an object`)
	}
	return nil
}
