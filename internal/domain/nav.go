package domain

// Tab is one of the four top-level views.
type Tab string

const (
	TabHome      Tab = "home"
	TabFavorites Tab = "favorites"
	TabList      Tab = "list"
	TabProfile   Tab = "profile"
)

// Tabs returns the tabs in navigation-bar order.
func Tabs() []Tab {
	return []Tab{TabHome, TabFavorites, TabList, TabProfile}
}

// ParseTab converts a tab name. The second result is false for unknown names.
func ParseTab(s string) (Tab, bool) {
	switch t := Tab(s); t {
	case TabHome, TabFavorites, TabList, TabProfile:
		return t, true
	default:
		return "", false
	}
}

// String returns the tab name.
func (t Tab) String() string { return string(t) }
