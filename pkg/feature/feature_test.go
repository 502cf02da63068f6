// pkg/feature/feature_test.go - Unit tests for feature loading and validation
package feature

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validFeature = `{
	"type": "Feature",
	"geometry": {"type": "LineString", "coordinates": [[45.6, 42.53], [49.758, 48]]},
	"properties": {"id": 2}
}`

func TestValidateAccepts(t *testing.T) {
	if err := Validate(0, []byte(validFeature)); err != nil {
		t.Errorf("expected valid feature to pass, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		feature string
	}{
		{"missing geometry", `{"type": "Feature", "properties": {}}`},
		{"missing properties", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}}`},
		{"missing type", `{"geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": {}}`},
		{"type not a string", `{"type": 7, "geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": {}}`},
		{"geometry not an object", `{"type": "Feature", "geometry": "Point", "properties": {}}`},
		{"geometry missing type", `{"type": "Feature", "geometry": {"coordinates": [1, 2]}, "properties": {}}`},
		{"geometry missing coordinates", `{"type": "Feature", "geometry": {"type": "Point"}, "properties": {}}`},
		{"coordinates not an array", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": "1,2"}, "properties": {}}`},
		{"properties not an object", `{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(4, []byte(tt.feature))
			if err == nil {
				t.Fatal("expected validation to fail")
			}

			var invalid *InvalidGeoJSONError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidGeoJSONError, got %T: %v", err, err)
			}
			if invalid.Index != 4 {
				t.Errorf("expected index 4, got %d", invalid.Index)
			}
		})
	}
}

func TestValidateMalformedJSONIsNotStructural(t *testing.T) {
	err := Validate(0, []byte(`{"type":`))
	if err == nil {
		t.Fatal("expected an error")
	}

	var invalid *InvalidGeoJSONError
	if errors.As(err, &invalid) {
		t.Error("malformed JSON should not be reported as a structural failure")
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("./does-not-exist.json"); err == nil {
		t.Error("expected missing path to fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feature.json")
	if err := os.WriteFile(path, []byte(validFeature), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != validFeature {
		t.Error("loaded document does not match the file contents")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("./does-not-exist.json"); err == nil {
		t.Error("expected an error before any read is attempted")
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(validFeature), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`{"type": "Feature", "properties": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateFiles([]string{good}); err != nil {
		t.Errorf("expected valid batch to pass, got %v", err)
	}

	err := ValidateFiles([]string{bad, good, "./does-not-exist.json"})
	if err == nil {
		t.Fatal("expected failures to be reported")
	}

	// the whole batch is checked; both failures surface together
	var invalid *InvalidGeoJSONError
	if !errors.As(err, &invalid) {
		t.Error("expected the structural failure in the joined error")
	}
}
