package sanitize

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	const (
		def = 0.5
		lo  = 0.1
		hi  = 2.0
	)

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"zero falls back to default", 0, def},
		{"negative falls back to default", -3, def},
		{"NaN falls back to default", math.NaN(), def},
		{"below minimum clamps up", lo - 0.05, lo},
		{"above maximum clamps down", hi + 1, hi},
		{"inside range passes through", 0.75, 0.75},
		{"exactly minimum", lo, lo},
		{"exactly maximum", hi, hi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.value, def, lo, hi))
		})
	}
}

func TestClampProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)

	properties := gopter.NewProperties(parameters)

	properties.Property("result is always default or within bounds", prop.ForAll(
		func(value float64) bool {
			got := Clamp(value, 0.5, 0.1, 2.0)
			return got == 0.5 || (got >= 0.1 && got <= 2.0)
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("in-range values pass through unchanged", prop.ForAll(
		func(value float64) bool {
			return Clamp(value, 0.5, 0.1, 2.0) == value
		},
		gen.Float64Range(0.1, 2.0),
	))

	properties.TestingRun(t)
}
