package geo

import (
	"math"
	"testing"
)

func TestDistance_SamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{10.776889, 106.700806},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	cases := [][4]float64{
		{10.776889, 106.700806, 10.782773, 106.701755},
		{0, 0, 1, 1},
		{-45.0, 170.0, 45.0, -170.0},
	}
	for _, c := range cases {
		ab := Distance(c[0], c[1], c[2], c[3])
		ba := Distance(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v for %v", ab, ba, c)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{
			// One degree of latitude on the equator.
			name: "one degree latitude",
			lat1: 0, lon1: 0, lat2: 1, lon2: 0,
			want:      111195,
			tolerance: 100,
		},
		{
			// Two points ~650m apart in central Ho Chi Minh City.
			name: "short city distance",
			lat1: 10.776889, lon1: 106.700806,
			lat2: 10.782773, lon2: 106.700806,
			want:      654,
			tolerance: 5,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("Distance() = %v, want %v ± %v", got, c.want, c.tolerance)
			}
		})
	}
}

func TestDistance_NaNPropagates(t *testing.T) {
	if d := Distance(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("Distance with NaN input = %v, want NaN", d)
	}
}
