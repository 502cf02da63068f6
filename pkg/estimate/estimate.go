// pkg/estimate/estimate.go - Area estimation pipeline
package estimate

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"

	"mts-client/pkg/feature"
)

// PricingDocsURL points at the service documentation for tileset pricing.
const PricingDocsURL = "https://www.mapbox.com/pricing/#tilesets"

var (
	// ErrFineDisabled is returned when a 1cm estimate is requested without
	// the explicit opt-in. The tier has to be enabled through support.
	ErrFineDisabled = errors.New("1cm precision requires the force-1cm option and must be enabled through support")

	// ErrForceWithoutFine is returned when force-1cm is set for any other
	// tier, a guard against accidental enablement.
	ErrForceWithoutFine = errors.New("the force-1cm option is enabled but the precision is not 1cm")

	// ErrFeatureParsing is the umbrella error for malformed feature input.
	// The underlying parser failure is wrapped as the cause.
	ErrFeatureParsing = errors.New("error with feature parsing: ensure that feature inputs are valid and formatted correctly")
)

// Options control validation and the fine-precision gate.
type Options struct {
	// SkipValidation bypasses the structural GeoJSON check when loading
	// features; callers whose inputs already passed validation on an earlier
	// run may skip it.
	SkipValidation bool

	// Force1cm must be set if and only if the precision is 1cm.
	Force1cm bool
}

// Result is the JSON-serializable outcome of an estimate.
type Result struct {
	Km2         string `json:"km2"`
	Precision   string `json:"precision"`
	PricingDocs string `json:"pricing_docs"`
}

// Area estimates the surface a tileset built from the given features would
// cover. The features are filtered, covered with tiles at the zoom implied
// by the precision tier, and the geodesic areas of the cover are summed and
// rounded to whole square kilometers.
func Area(features []*geojson.Feature, precision Precision, opts Options) (*Result, error) {
	if err := checkFineGate(precision, opts); err != nil {
		return nil, err
	}

	tileable := feature.Filter(features)

	cover, err := burn(tileable, precision.Zoom())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeatureParsing, err)
	}

	km2 := int64(math.Round(coverArea(cover)))

	return &Result{
		Km2:         strconv.FormatInt(km2, 10),
		Precision:   string(precision),
		PricingDocs: PricingDocsURL,
	}, nil
}

// AreaFromPaths loads GeoJSON features from disk and estimates their area.
// Every path must exist before any file is read. Unless opts.SkipValidation
// is set, each feature passes the structural check before tiling; one invalid
// feature aborts the whole estimate, since it would corrupt the cover.
func AreaFromPaths(paths []string, precision Precision, opts Options) (*Result, error) {
	if err := checkFineGate(precision, opts); err != nil {
		return nil, err
	}

	features := make([]*geojson.Feature, 0, len(paths))
	for i, path := range paths {
		raw, err := feature.Load(path)
		if err != nil {
			return nil, err
		}

		if !opts.SkipValidation {
			if err := feature.Validate(i, raw); err != nil {
				var invalid *feature.InvalidGeoJSONError
				if errors.As(err, &invalid) {
					return nil, err
				}
				return nil, fmt.Errorf("%w: %w", ErrFeatureParsing, err)
			}
		}

		ft, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFeatureParsing, err)
		}
		features = append(features, ft)
	}

	return Area(features, precision, opts)
}

// checkFineGate enforces the 1cm opt-in in both directions before any tiling
// work begins.
func checkFineGate(precision Precision, opts Options) error {
	if precision == Precision1cm && !opts.Force1cm {
		return ErrFineDisabled
	}
	if precision != Precision1cm && opts.Force1cm {
		return ErrForceWithoutFine
	}
	return nil
}

// burn delegates cover generation to the tiling library and merges the
// per-feature covers into one set. The set is keyed by tile address, so the
// merged cover cannot hold duplicates.
func burn(features []*geojson.Feature, zoom maptile.Zoom) (maptile.Set, error) {
	cover := make(maptile.Set)
	for _, ft := range features {
		tiles, err := tilecover.Geometry(ft.Geometry, zoom)
		if err != nil {
			return nil, err
		}
		for tile := range tiles {
			cover[tile] = true
		}
	}
	return cover, nil
}
