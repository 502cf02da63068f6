// pkg/estimate/precision_test.go - Unit tests for the precision policy
package estimate

import (
	"testing"

	"github.com/paulmach/orb/maptile"
)

func TestPrecisionZoom(t *testing.T) {
	tests := []struct {
		name      string
		precision Precision
		want      maptile.Zoom
	}{
		{"10m", Precision10m, 6},
		{"1m", Precision1m, 11},
		{"30cm", Precision30cm, 14},
		{"1cm", Precision1cm, fineZoom},
		{"unknown tier falls back", Precision("2km"), 17},
		{"empty string falls back", Precision(""), 17},
		{"case sensitive", Precision("10M"), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.precision.Zoom(); got != tt.want {
				t.Errorf("Zoom() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFineZoomBeyondRegularTiers(t *testing.T) {
	if fineZoom <= 17 {
		t.Errorf("1cm zoom %d must be finer than every regular tier", fineZoom)
	}
}
