// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		y0, y1 float32
		x      float32
		want   float32
	}{
		{
			name: "at start",
			y0:   1.0,
			y1:   2.0,
			x:    0.0,
			want: 1.0,
		},
		{
			name: "at end",
			y0:   1.0,
			y1:   2.0,
			x:    1.0,
			want: 2.0,
		},
		{
			name: "midpoint",
			y0:   1.0,
			y1:   2.0,
			x:    0.5,
			want: 1.5,
		},
		{
			name: "quarter",
			y0:   0.0,
			y1:   4.0,
			x:    0.25,
			want: 1.0,
		},
		{
			name: "negative slope",
			y0:   1.0,
			y1:   -1.0,
			x:    0.5,
			want: 0.0,
		},
		{
			name: "constant",
			y0:   0.5,
			y1:   0.5,
			x:    0.7,
			want: 0.5,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Lerp(tt.y0, tt.y1, tt.x)
			if math.Abs(float64(got-tt.want)) > 0.0001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.y0, tt.y1, tt.x, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{
			name:      "at start returns y1",
			y0:        0.0,
			y1:        1.0,
			y2:        2.0,
			y3:        3.0,
			x:         0.0,
			want:      1.0,
			tolerance: 0.001,
		},
		{
			name:      "at end returns y2",
			y0:        0.0,
			y1:        1.0,
			y2:        2.0,
			y3:        3.0,
			x:         1.0,
			want:      2.0,
			tolerance: 0.001,
		},
		{
			name:      "midpoint of linear ramp",
			y0:        0.0,
			y1:        1.0,
			y2:        2.0,
			y3:        3.0,
			x:         0.5,
			want:      1.5,
			tolerance: 0.001,
		},
		{
			name:      "constant sequence",
			y0:        0.5,
			y1:        0.5,
			y2:        0.5,
			y3:        0.5,
			x:         0.3,
			want:      0.5,
			tolerance: 0.001,
		},
		{
			name:      "symmetric peak",
			y0:        0.0,
			y1:        1.0,
			y2:        1.0,
			y3:        0.0,
			x:         0.5,
			want:      1.125, // Catmull-Rom overshoots a flat peak slightly
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if float32(math.Abs(float64(got-tt.want))) > tt.tolerance {
				t.Errorf("CubicInterpolate(%v, %v, %v, %v, %v) = %v, want %v (±%v)",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestLerp_MatchesCubicOnLinearData(t *testing.T) {
	t.Parallel()

	// On perfectly linear data the two interpolators must agree.
	for _, x := range []float32{0.0, 0.25, 0.5, 0.75, 1.0} {
		lin := Lerp(1.0, 2.0, x)
		cub := CubicInterpolate(0.0, 1.0, 2.0, 3.0, x)
		if math.Abs(float64(lin-cub)) > 0.001 {
			t.Errorf("at x=%v: Lerp = %v, CubicInterpolate = %v", x, lin, cub)
		}
	}
}
