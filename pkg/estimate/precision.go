// pkg/estimate/precision.go - Precision tier to zoom level policy
package estimate

import "github.com/paulmach/orb/maptile"

// Precision is the human-facing ground-resolution tier of an estimate.
type Precision string

// Recognized precision tiers.
const (
	Precision10m  Precision = "10m"
	Precision1m   Precision = "1m"
	Precision30cm Precision = "30cm"
	Precision1cm  Precision = "1cm"
)

// fineZoom is handed to the cover generator for the 1cm tier. The generator
// owns the top of its zoom range; the policy only has to pass a zoom finer
// than every regular tier.
const fineZoom maptile.Zoom = 20

// Zoom converts a precision tier to the tile zoom level used for the cover.
// The mapping is total: any unrecognized tier silently falls back to zoom 17,
// matching the behavior callers already depend on.
func (p Precision) Zoom() maptile.Zoom {
	switch p {
	case Precision10m:
		return 6
	case Precision1m:
		return 11
	case Precision30cm:
		return 14
	case Precision1cm:
		return fineZoom
	default:
		return 17
	}
}
