// Package quantity scales ingredient quantities to a serving count and
// formats them for display.
package quantity

import "math"

// Granularity is the step scaled quantities are rounded to.
const Granularity = 0.25

// Scale converts a quantity authored for baseServings to targetServings,
// rounded to the nearest quarter unit. Callers validate targetServings.
func Scale(base float64, baseServings, targetServings int) float64 {
	if baseServings <= 0 {
		return roundQuarter(base)
	}
	return roundQuarter(base * float64(targetServings) / float64(baseServings))
}

func roundQuarter(q float64) float64 {
	return math.Round(q/Granularity) * Granularity
}
