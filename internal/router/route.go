// Package router maps location hashes to views and tracks the active view
// as a small state machine: one of the four tabs, optionally covered by a
// modal recipe detail.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

const recipePrefix = "recipe/"

// ErrUnknownTab is returned by Parse for a name that is neither a tab nor a
// recipe route.
var ErrUnknownTab = fmt.Errorf("unknown tab: %w", domain.ErrInvalidRoute)

// Route is a parsed navigation target.
type Route struct {
	Tab      domain.Tab // set for tab routes
	RecipeID int        // set for detail routes
}

// IsDetail reports whether the route opens a recipe detail.
func (r Route) IsDetail() bool { return r.RecipeID != 0 }

// String renders the route as a hash fragment without the leading '#'.
func (r Route) String() string {
	if r.IsDetail() {
		return recipePrefix + strconv.Itoa(r.RecipeID)
	}
	return r.Tab.String()
}

// TabRoute returns the route for a tab.
func TabRoute(t domain.Tab) Route { return Route{Tab: t} }

// RecipeRoute returns the detail route for a recipe id.
func RecipeRoute(id int) Route { return Route{RecipeID: id} }

// Parse converts a location hash ("#home", "recipe/3", "") to a Route.
// An empty hash is the home tab. A recipe route with a missing,
// non-numeric, or non-positive id fails with domain.ErrInvalidRoute.
func Parse(hash string) (Route, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	h = strings.Trim(h, "/")
	if h == "" {
		return TabRoute(domain.TabHome), nil
	}

	if h == "recipe" || strings.HasPrefix(h, recipePrefix) {
		raw := strings.TrimPrefix(strings.TrimPrefix(h, "recipe"), "/")
		id, err := strconv.Atoi(raw)
		if err != nil {
			return Route{}, fmt.Errorf("recipe id %q: %w", raw, domain.ErrInvalidRoute)
		}
		if id <= 0 {
			return Route{}, fmt.Errorf("recipe id %d: %w", id, domain.ErrInvalidRoute)
		}
		return RecipeRoute(id), nil
	}

	t, ok := domain.ParseTab(strings.ToLower(h))
	if !ok {
		return Route{}, fmt.Errorf("%q: %w", h, ErrUnknownTab)
	}
	return TabRoute(t), nil
}
