// pkg/feature/filter.go - Pre-tiling feature filter
package feature

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Filter materializes the subset of features the tiler can work with,
// dropping features whose geometry is missing or degenerate. The result is a
// finite slice; the area calculation needs the whole batch at once.
func Filter(features []*geojson.Feature) []*geojson.Feature {
	kept := make([]*geojson.Feature, 0, len(features))
	for _, ft := range features {
		if ft == nil || ft.Geometry == nil || emptyGeometry(ft.Geometry) {
			continue
		}
		kept = append(kept, ft)
	}
	return kept
}

func emptyGeometry(g orb.Geometry) bool {
	switch geom := g.(type) {
	case orb.Point, orb.Bound:
		return false
	case orb.MultiPoint:
		return len(geom) == 0
	case orb.LineString:
		return len(geom) < 2
	case orb.MultiLineString:
		return len(geom) == 0
	case orb.Ring:
		return len(geom) < 3
	case orb.Polygon:
		return len(geom) == 0 || len(geom[0]) < 3
	case orb.MultiPolygon:
		return len(geom) == 0
	case orb.Collection:
		return len(geom) == 0
	}
	return true
}
