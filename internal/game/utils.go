package game

import (
	"fmt"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatValue renders a trig value for the panel. Values clamped to the
// finite sentinel read as infinity, so anything past 1e9 prints as inf.
func formatValue(v float64) string {
	if v > 1e9 {
		return "inf"
	}
	if v < -1e9 {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}

// formatAngle renders theta in radians with its degree equivalent.
func formatAngle(theta float64) string {
	return fmt.Sprintf("θ = %.2f (%.0fº)", theta, theta*180/math.Pi)
}

// formatRate renders the rate in rad/s with its degree equivalent.
func formatRate(rate float64) string {
	return fmt.Sprintf("rate = %.2f rad/s (%.0f deg/s)", rate, rate*180/math.Pi)
}
