package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSymmetric(t *testing.T) {
	d1 := DistanceKm(52.52, 13.405, 48.8566, 2.3522)
	d2 := DistanceKm(48.8566, 2.3522, 52.52, 13.405)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKmIdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(10.5, -7.25, 10.5, -7.25))
}

func TestDistanceKmOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is about 111.19 km.
	assert.InDelta(t, 111.19, DistanceKm(0, 0, 0, 1), 0.1)
}

func TestFloat(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  float64
		ok    bool
	}{
		{"float64", 12.5, 12.5, true},
		{"int64", int64(4), 4, true},
		{"string", "12.5", 12.5, true},
		{"padded string", " -7.25 ", -7.25, true},
		{"non-numeric string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Float(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
