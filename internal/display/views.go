package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/quantity"
	"github.com/hammamikhairi/recipebox/internal/router"
)

// Browser is the read side of the controller that views render from.
type Browser interface {
	Route() router.Route
	Tab() domain.Tab
	Filter() domain.FilterState
	Page() []domain.Recipe
	Remaining() int
	FavoriteRecipes() []domain.Recipe
	IsFavorite(id int) bool
	ShoppingItems() []domain.ShoppingItem
	ShoppingCounts() (checked, total int)
	Recipe(id int) (*domain.Recipe, error)
	Servings(id int) (int, error)
	MaxServings() int
	ScaledIngredients(id int) ([]engine.ScaledIngredient, error)
}

var _ Browser = (*engine.Engine)(nil)

// Star glyphs.
const (
	StarFull  = "★"
	StarHalf  = "⯪"
	StarEmpty = "☆"
)

// Stars renders a 0-5 rating as five glyphs: floor(rating) full stars, a
// half star when the fraction is at least .5, empty stars after that.
func Stars(rating float64) string {
	full := int(math.Floor(rating))
	half := rating-math.Floor(rating) >= 0.5

	var b strings.Builder
	for i := range 5 {
		switch {
		case i < full:
			b.WriteString(StarFull)
		case i == full && half:
			b.WriteString(StarHalf)
		default:
			b.WriteString(StarEmpty)
		}
	}
	return b.String()
}

// Meta returns the "{time}min • {difficulty}" line.
func Meta(r *domain.Recipe) string {
	return fmt.Sprintf("%dmin • %s", r.TimeMinutes, r.Difficulty)
}

func heart(fav bool) string {
	if fav {
		return favStyle.Render("♥")
	}
	return secondaryStyle.Render("♡")
}

// Nav renders the tab bar with the active tab highlighted.
func Nav(active domain.Tab) string {
	parts := make([]string, 0, 4)
	for _, t := range domain.Tabs() {
		label := strings.ToUpper(t.String()[:1]) + t.String()[1:]
		if t == active {
			parts = append(parts, activeTabStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, tabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// Filters renders the current search, category and quick filters.
func Filters(st domain.FilterState) string {
	search := st.Search
	if search == "" {
		search = "-"
	}
	category := st.Category
	if category == "" {
		category = domain.CategoryAll
	}
	var quick []string
	for _, q := range domain.QuickFilters() {
		box := "[ ]"
		if st.Quick[q] {
			box = "[x]"
		}
		quick = append(quick, box+" "+string(q))
	}
	return secondaryStyle.Render(fmt.Sprintf("search: %s  category: %s  %s", search, category, strings.Join(quick, " ")))
}

// Card renders one recipe as a compact block.
func Card(r *domain.Recipe, fav bool) string {
	title := titleStyle.Render(fmt.Sprintf("%2d. %s %s", r.ID, r.Image, r.Title))
	meta := starStyle.Render(Stars(r.Rating)) + "  " + secondaryStyle.Render(Meta(r))
	return heart(fav) + " " + title + "\n      " + meta
}

func cards(b Browser, recipes []domain.Recipe) string {
	out := make([]string, 0, len(recipes))
	for i := range recipes {
		out = append(out, Card(&recipes[i], b.IsFavorite(recipes[i].ID)))
	}
	return strings.Join(out, "\n")
}

func empty(title, hint string) string {
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), secondaryStyle.Render(hint))
}

// Home renders the filtered, paginated recipe list.
func Home(b Browser) string {
	page := b.Page()
	var s strings.Builder
	s.WriteString(Filters(b.Filter()))
	s.WriteString("\n\n")
	if len(page) == 0 {
		s.WriteString(empty("No recipes found", "Try adjusting your search or filters"))
		return s.String()
	}
	s.WriteString(cards(b, page))
	if n := b.Remaining(); n > 0 {
		s.WriteString("\n\n")
		s.WriteString(buttonStyle.Render(fmt.Sprintf("Load More (%d remaining)", n)))
	}
	return s.String()
}

// Favorites renders the favorited recipes.
func Favorites(b Browser) string {
	favs := b.FavoriteRecipes()
	if len(favs) == 0 {
		return empty("No favorites yet", "Heart some recipes to see them here")
	}
	return cards(b, favs)
}

// ShoppingList renders the list with its "X of Y items" progress line.
func ShoppingList(b Browser) string {
	items := b.ShoppingItems()
	if len(items) == 0 {
		return empty("Shopping List Empty", "Add ingredients from recipes to get started")
	}
	checked, total := b.ShoppingCounts()

	var s strings.Builder
	s.WriteString(headerStyle.Render("Shopping List"))
	s.WriteString("  ")
	s.WriteString(secondaryStyle.Render(fmt.Sprintf("%d of %d items", checked, total)))
	s.WriteByte('\n')
	for i, it := range items {
		s.WriteByte('\n')
		box, style := "○", primaryStyle
		if it.Checked {
			box, style = "✓", checkedStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%2d. %s %s", i+1, box, it.Name)))
		s.WriteString("  ")
		s.WriteString(secondaryStyle.Render(quantity.Format(it.Quantity, it.Unit)))
	}
	s.WriteString("\n\n")
	s.WriteString(secondaryStyle.Render(fmt.Sprintf("clear checked (%d) · clear all", checked)))
	return s.String()
}

// Profile renders the profile placeholder.
func Profile() string {
	return empty("Profile", "Coming soon...")
}

// Detail renders the full recipe sheet at its current servings.
func Detail(b Browser, id int) (string, error) {
	r, err := b.Recipe(id)
	if err != nil {
		return "", err
	}
	n, _ := b.Servings(id)
	lines, _ := b.ScaledIngredients(id)

	var s strings.Builder
	s.WriteString(heart(b.IsFavorite(id)) + " " + headerStyle.Render(r.Image+" "+r.Title))
	s.WriteByte('\n')
	s.WriteString(starStyle.Render(Stars(r.Rating)) + "  " +
		secondaryStyle.Render(Meta(r)+"  "+strconv.Itoa(r.Calories)+" cal"))
	s.WriteString("\n\n")

	dec, inc := "-", "+"
	if n <= 1 {
		dec = " "
	}
	if n >= b.MaxServings() {
		inc = " "
	}
	s.WriteString(stepStyle.Render("Servings") + "  " + fmt.Sprintf("[%s] %d [%s]", dec, n, inc))
	s.WriteString("\n\n")

	s.WriteString(stepStyle.Render("Ingredients"))
	for _, l := range lines {
		s.WriteString("\n  • " + primaryStyle.Render(l.Display) + " " + l.Name)
	}
	s.WriteString("\n\n")

	s.WriteString(stepStyle.Render("Instructions"))
	for i, step := range r.Steps {
		s.WriteString(fmt.Sprintf("\n  %d. %s", i+1, primaryStyle.Render(step)))
	}
	s.WriteString("\n\n")
	s.WriteString(buttonStyle.Render("Add to Shopping List"))
	return sheetStyle.Render(s.String()), nil
}

// Render draws the current view: the detail sheet when one is open,
// otherwise the active tab under the navigation bar.
func Render(b Browser) string {
	route := b.Route()
	var body string
	switch {
	case route.IsDetail():
		d, err := Detail(b, route.RecipeID)
		if err != nil {
			d = urgentOutputStyle.Render(err.Error())
		}
		body = d
	case route.Tab == domain.TabFavorites:
		body = Favorites(b)
	case route.Tab == domain.TabList:
		body = ShoppingList(b)
	case route.Tab == domain.TabProfile:
		body = Profile()
	default:
		body = Home(b)
	}
	return Nav(b.Tab()) + "\n\n" + body
}

// HelpText lists the commands understood by the prompt.
func HelpText() string {
	return strings.Join([]string{
		"home | favorites | list | profile    switch tab",
		"<id> | open <id>                     open a recipe",
		"back                                 close the recipe",
		"/<text> | search <text>              search (empty clears)",
		"cat <all|quick|category|tag>         category",
		"quick-time | easy | vegan            toggle a quick filter",
		"more                                 load more recipes",
		"fav [id]                             toggle favorite",
		"+ | -                                servings",
		"add [id]                             add ingredients to the list",
		"check <n> | clear | clear all        shopping list",
		"help | quit",
	}, "\n")
}
