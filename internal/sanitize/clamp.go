package sanitize

import "math"

// Default bounds for image scale factors. Values outside this range distort
// page layout badly enough to break compilation of some templates.
const (
	DefaultMinScale = 0.05
	DefaultMaxScale = 2.0
)

// Clamp returns def when value is missing (<= 0 or NaN), otherwise value
// clamped into [min, max]. Pure and total, no error path.
func Clamp(value, def, min, max float64) float64 {
	if math.IsNaN(value) || value <= 0 {
		return def
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
