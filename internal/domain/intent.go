package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentNavigate           // switch tab or follow a route ("recipe/3")
	IntentOpenRecipe         // open the detail sheet for a recipe id
	IntentCloseDetail
	IntentSearch
	IntentCategory
	IntentToggleFilter
	IntentLoadMore
	IntentToggleFavorite // payload: recipe id, empty means the open recipe
	IntentServingsUp
	IntentServingsDown
	IntentAddToList
	IntentCheckItem // payload: 1-based position on the shopping list
	IntentClearChecked
	IntentClearAll
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentNavigate:
		return "navigate"
	case IntentOpenRecipe:
		return "open_recipe"
	case IntentCloseDetail:
		return "close_detail"
	case IntentSearch:
		return "search"
	case IntentCategory:
		return "category"
	case IntentToggleFilter:
		return "toggle_filter"
	case IntentLoadMore:
		return "load_more"
	case IntentToggleFavorite:
		return "toggle_favorite"
	case IntentServingsUp:
		return "servings_up"
	case IntentServingsDown:
		return "servings_down"
	case IntentAddToList:
		return "add_to_list"
	case IntentCheckItem:
		return "check_item"
	case IntentClearChecked:
		return "clear_checked"
	case IntentClearAll:
		return "clear_all"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional argument, e.g. recipe id or search query
}
