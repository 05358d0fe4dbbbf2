package router

import (
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// TransitionFunc observes a view change. from and to always differ.
type TransitionFunc func(from, to Route)

// Option configures the machine.
type Option func(*Machine)

// OnTransition registers a hook run after every view change. Hooks run in
// registration order.
func OnTransition(fn TransitionFunc) Option {
	return func(m *Machine) {
		m.hooks = append(m.hooks, fn)
	}
}

// Machine is the navigation state machine over Home, Favorites, List,
// Profile and RecipeDetail(id). Opening a detail does not change the
// underlying tab; closing it returns to that tab.
//
// Machine is not safe for concurrent use; it is owned by the controller.
type Machine struct {
	tab    domain.Tab
	detail int
	hooks  []TransitionFunc
	log    *logger.Logger
}

// NewMachine starts on the given tab. An invalid tab falls back to home.
func NewMachine(start domain.Tab, log *logger.Logger, opts ...Option) *Machine {
	if _, ok := domain.ParseTab(string(start)); !ok {
		start = domain.TabHome
	}
	m := &Machine{tab: start, log: log}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the visible view: the open detail, or the active tab.
func (m *Machine) Current() Route {
	if m.detail != 0 {
		return RecipeRoute(m.detail)
	}
	return TabRoute(m.tab)
}

// Tab returns the active tab, including while a detail covers it.
func (m *Machine) Tab() domain.Tab { return m.tab }

// Detail returns the open recipe id.
func (m *Machine) Detail() (int, bool) { return m.detail, m.detail != 0 }

// Modal reports whether a detail view is blocking the tab behind it.
func (m *Machine) Modal() bool { return m.detail != 0 }

// Go moves to r. Selecting a tab closes any open detail. Returns false
// when r is already the current view.
func (m *Machine) Go(r Route) bool {
	from := m.Current()
	if from == r {
		return false
	}

	if r.IsDetail() {
		m.detail = r.RecipeID
	} else {
		m.detail = 0
		m.tab = r.Tab
	}

	m.log.Debug("route %s -> %s", from, r)
	m.fire(from, m.Current())
	return true
}

// Close dismisses the detail and returns to the active tab.
func (m *Machine) Close() error {
	if m.detail == 0 {
		return domain.ErrNoDetailOpen
	}
	m.Go(TabRoute(m.tab))
	return nil
}

func (m *Machine) fire(from, to Route) {
	for _, fn := range m.hooks {
		fn(from, to)
	}
}
