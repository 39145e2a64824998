package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"middle", 0.25, 0.25},
		{"one", 1, 1},
		{"above", 3, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp01(c.in))
		})
	}
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, 10.0, Lerp(10, 20, 0), 1e-9)
}
