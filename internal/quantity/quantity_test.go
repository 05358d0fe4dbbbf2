package quantity

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name           string
		base           float64
		baseServings   int
		targetServings int
		want           float64
	}{
		{"same servings", 2, 4, 4, 2},
		{"double", 1, 2, 4, 2},
		{"halve", 1, 2, 1, 0.5},
		{"rounds to quarter", 1, 3, 1, 0.25},
		{"rounds up", 2.25, 24, 12, 1.25},
		{"tiny rounds to zero", 1, 12, 1, 0},
		{"pieces", 2, 2, 4, 4},
		{"identity rounds", 0.6, 2, 2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scale(tt.base, tt.baseServings, tt.targetServings)
			if got != tt.want {
				t.Fatalf("Scale(%v, %d, %d) = %v, want %v", tt.base, tt.baseServings, tt.targetServings, got, tt.want)
			}
		})
	}
}

func TestScaleIsQuarterMultiple(t *testing.T) {
	bases := []float64{0.1, 0.25, 0.33, 1, 1.7, 2.25, 3, 6}
	for _, q := range bases {
		for sBase := 1; sBase <= 24; sBase += 3 {
			for sTarget := 1; sTarget <= 12; sTarget++ {
				got := Scale(q, sBase, sTarget)
				if r := math.Mod(got, Granularity); r != 0 {
					t.Fatalf("Scale(%v, %d, %d) = %v is not a multiple of %v", q, sBase, sTarget, got, Granularity)
				}
			}
		}
		if got, want := Scale(q, 4, 4), math.Round(q*4)/4; got != want {
			t.Fatalf("Scale(%v, 4, 4) = %v, want %v", q, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		q    float64
		unit string
		want string
	}{
		{1, domain.UnitPieces, "1 pc"},
		{2, domain.UnitPieces, "2 pcs"},
		{0.5, domain.UnitPieces, "0.5 pcs"},
		{0.5, domain.UnitCup, "8 tbsp"},
		{0.25, domain.UnitCup, "4 tbsp"},
		{0.75, domain.UnitCup, "12 tbsp"},
		{1, domain.UnitCup, "1 cup"},
		{1.5, domain.UnitCup, "1.5 cup"},
		{0.5, "cups", "0.5 cups"},
		{0, domain.UnitTablespoon, "0 tsp"},
		{0.25, domain.UnitTablespoon, "0.25 tbsp"},
		{2, "slices", "2 slices"},
		{1, "pinch", "1 pinch"},
		{3, "cloves", "3 cloves"},
		{2.25, "lbs", "2.25 lbs"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.q, tt.unit); got != tt.want {
				t.Fatalf("Format(%v, %q) = %q, want %q", tt.q, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFormatSmallTablespoon(t *testing.T) {
	got := Format(0.1667, domain.UnitTablespoon)
	num, unit, ok := strings.Cut(got, " ")
	if !ok || unit != domain.UnitTeaspoon {
		t.Fatalf("Format(0.1667, tbsp) = %q, want teaspoons", got)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		t.Fatalf("parsing %q: %v", num, err)
	}
	if math.Abs(v-0.5) > 0.001 {
		t.Fatalf("Format(0.1667, tbsp) = %q, want ~0.5 tsp", got)
	}
}

func TestScaleThenFormat(t *testing.T) {
	// One cup authored for two servings, viewed for one.
	q := Scale(1, 2, 1)
	if q != 0.5 {
		t.Fatalf("scaled = %v, want 0.5", q)
	}
	if got := Format(q, domain.UnitCup); got != "8 tbsp" {
		t.Fatalf("formatted = %q, want %q", got, "8 tbsp")
	}
}
