// pkg/estimate/area.go - Geodesic tile area math
package estimate

import (
	"math"

	"github.com/paulmach/orb/maptile"
)

// earthRadiusKm is the mean Earth radius of the spherical model.
const earthRadiusKm = 6371.0088

// tile2lng returns the longitude of a tile column's western edge in degrees.
func tile2lng(x float64, z maptile.Zoom) float64 {
	return x/math.Exp2(float64(z))*360.0 - 180.0
}

// tile2lat returns the latitude of a tile row's northern edge in degrees,
// using the inverse spherical Mercator relation.
func tile2lat(y float64, z maptile.Zoom) float64 {
	n := math.Pi - 2.0*math.Pi*y/math.Exp2(float64(z))
	return (180.0 / math.Pi) * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// TileArea returns the surface area of a tile in km² on a spherical Earth.
// A tile's bounding box is a latitude/longitude graticule cell, so the
// closed-form cell area is exact for the spherical model; no ellipsoidal
// correction is applied.
func TileArea(t maptile.Tile) float64 {
	left := deg2rad(tile2lng(float64(t.X), t.Z))
	top := deg2rad(tile2lat(float64(t.Y), t.Z))
	right := deg2rad(tile2lng(float64(t.X)+1, t.Z))
	bottom := deg2rad(tile2lat(float64(t.Y)+1, t.Z))

	return (math.Pi / deg2rad(180)) * earthRadiusKm * earthRadiusKm *
		math.Abs(math.Sin(top)-math.Sin(bottom)) * math.Abs(left-right)
}

// coverArea sums the area of every tile in a cover. The cover is a set of
// distinct tile addresses, so no tile is counted twice; iteration order only
// affects the last bits of the float sum.
func coverArea(cover maptile.Set) float64 {
	var total float64
	for tile := range cover {
		total += TileArea(tile)
	}
	return total
}
