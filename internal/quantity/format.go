package quantity

import (
	"strconv"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Conversion factors for the small-measure display rules.
const (
	tbspPerCup = 16
	tspPerTbsp = 3
)

// Format renders a quantity and unit for display. Small cups are shown
// in tablespoons and very small tablespoons in teaspoons; a single piece
// reads "1 pc". Every other unit is passed through as "{quantity} {unit}".
func Format(q float64, unit string) string {
	switch {
	case q == 1 && unit == domain.UnitPieces:
		return "1 pc"
	case q < 1 && unit == domain.UnitCup:
		return FormatNumber(q*tbspPerCup) + " " + domain.UnitTablespoon
	case q < 0.25 && unit == domain.UnitTablespoon:
		return FormatNumber(q*tspPerTbsp) + " " + domain.UnitTeaspoon
	default:
		return FormatNumber(q) + " " + unit
	}
}

// FormatNumber prints q with the fewest digits that represent it exactly:
// 4 -> "4", 0.5 -> "0.5", 2.25 -> "2.25".
func FormatNumber(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
