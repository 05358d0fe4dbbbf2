// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

import "slices"

// ServingsLimit bounds every servings override: 1 <= n <= ServingsLimit.
const ServingsLimit = 12

// Recipe is a read-only recipe from the data source.
type Recipe struct {
	ID           int          `yaml:"id"`
	Title        string       `yaml:"title"`
	Categories   []string     `yaml:"categories"`
	Tags         []string     `yaml:"tags"`
	TimeMinutes  int          `yaml:"time_minutes"`
	Difficulty   Difficulty   `yaml:"difficulty"`
	Calories     int          `yaml:"calories"`
	Rating       float64      `yaml:"rating"`
	ServingsBase int          `yaml:"servings_base"`
	Ingredients  []Ingredient `yaml:"ingredients"`
	Steps        []string     `yaml:"steps"`
	Image        string       `yaml:"image,omitempty"`
	ImageURL     string       `yaml:"image_url,omitempty"`
}

// HasCategory reports whether the recipe is filed under the given category.
func (r *Recipe) HasCategory(c string) bool { return slices.Contains(r.Categories, c) }

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(t string) bool { return slices.Contains(r.Tags, t) }

// Ingredient is a single ingredient authored for the recipe's base servings.
type Ingredient struct {
	Name         string  `yaml:"name"`
	Unit         string  `yaml:"unit"`
	QuantityBase float64 `yaml:"quantity_base"`
}

// Units with special display rules. Any other unit string is passed
// through verbatim ("slices", "pinch", "lbs", "cups", ...).
const (
	UnitPieces     = "pcs"
	UnitCup        = "cup"
	UnitTablespoon = "tbsp"
	UnitTeaspoon   = "tsp"
)

// Difficulty is how hard a recipe is to make.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string { return string(d) }
