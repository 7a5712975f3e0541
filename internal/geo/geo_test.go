package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 10.776389, lng1: 106.701139,
			lat2: 10.776389, lng2: 106.701139,
			wantKm:    0,
			tolerance: 0.0001,
		},
		{
			name: "Ben Thanh market to Thao Dien (~4.9km)",
			lat1: 10.772461, lng1: 106.698055,
			lat2: 10.803511, lng2: 106.733906,
			wantKm:    5.2,
			tolerance: 0.5,
		},
		{
			name: "Ho Chi Minh City to Hanoi (~1140km)",
			lat1: 10.7769, lng1: 106.7009,
			lat2: 21.0278, lng2: 105.8342,
			wantKm:    1140,
			tolerance: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	d1 := DistanceKm(10.77, 106.70, 10.80, 106.73)
	d2 := DistanceKm(10.80, 106.73, 10.77, 106.70)
	if d1 != d2 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceKm_Rounding(t *testing.T) {
	d := DistanceKm(10.776389, 106.701139, 10.803511, 106.733906)
	if math.Round(d*1000)/1000 != d {
		t.Errorf("distance %v not rounded to 3 decimal places", d)
	}
}
