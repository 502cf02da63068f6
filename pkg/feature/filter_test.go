// pkg/feature/filter_test.go - Unit tests for the pre-tiling filter
package feature

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestFilter(t *testing.T) {
	point := geojson.NewFeature(orb.Point{4.9, 52.37})
	line := geojson.NewFeature(orb.LineString{{4.9, 52.37}, {5.1, 52.0}})

	features := []*geojson.Feature{
		point,
		nil,
		geojson.NewFeature(orb.LineString{}),
		geojson.NewFeature(orb.LineString{{1, 2}}),
		geojson.NewFeature(orb.Polygon{}),
		geojson.NewFeature(orb.MultiPolygon{}),
		geojson.NewFeature(orb.Collection{}),
		line,
	}

	kept := Filter(features)
	if len(kept) != 2 {
		t.Fatalf("expected 2 tileable features, got %d", len(kept))
	}
	if kept[0] != point || kept[1] != line {
		t.Error("filter must preserve input order")
	}
}

func TestFilterEmptyInput(t *testing.T) {
	kept := Filter(nil)
	if len(kept) != 0 {
		t.Errorf("expected empty result, got %d features", len(kept))
	}
}
