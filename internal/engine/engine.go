// Package engine is the application controller. It owns the navigation
// state, filters, favorites, servings overrides and shopping list, loads
// them from the store at startup, and writes each one back after every
// mutation.
//
// Engine is not safe for concurrent use. Every method must be called from
// the same goroutine; debounced search is delivered through the dispatch
// function so it can be posted back onto that goroutine.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/favorites"
	"github.com/hammamikhairi/recipebox/internal/filter"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/router"
	"github.com/hammamikhairi/recipebox/internal/shopping"
	"github.com/hammamikhairi/recipebox/internal/storage"
	"github.com/hammamikhairi/recipebox/internal/timer"
)

// DefaultMaxServings caps the servings stepper.
const DefaultMaxServings = domain.ServingsLimit

// Option configures the engine.
type Option func(*Engine)

// WithPageSize sets how many recipes each page reveals.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		e.pageSize = n
	}
}

// WithSearchDelay sets the debounce delay for SearchInput.
func WithSearchDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.searchDelay = d
	}
}

// WithMaxServings sets the upper bound of the servings stepper, clamped
// to 1..domain.ServingsLimit.
func WithMaxServings(n int) Option {
	return func(e *Engine) {
		e.maxServings = min(max(n, 1), domain.ServingsLimit)
	}
}

// WithDispatch routes debounced search updates through fn. See
// timer.WithDispatch.
func WithDispatch(fn func(func())) Option {
	return func(e *Engine) {
		e.dispatch = fn
	}
}

// WithNotifier sets where user feedback ("added to list") goes.
func WithNotifier(n domain.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithShoppingOptions passes options to the shopping list.
func WithShoppingOptions(opts ...shopping.Option) Option {
	return func(e *Engine) {
		e.shoppingOpts = append(e.shoppingOpts, opts...)
	}
}

// Engine is the single owner of application state.
type Engine struct {
	source   domain.RecipeSource
	store    *storage.Store
	log      *logger.Logger
	notifier domain.Notifier

	pageSize     int
	searchDelay  time.Duration
	maxServings  int
	dispatch     func(func())
	shoppingOpts []shopping.Option

	recipes  []domain.Recipe
	byID     map[int]int
	nav      *router.Machine
	savedTab domain.Tab
	filter   domain.FilterState
	pages    *filter.Paginator
	search   *timer.Debouncer
	favs     *favorites.Set
	list     *shopping.List
	servings map[int]int
}

// New creates an engine. Call Init before anything else.
func New(source domain.RecipeSource, store *storage.Store, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		source:      source,
		store:       store,
		log:         log,
		pageSize:    filter.DefaultPageSize,
		searchDelay: timer.DefaultDelay,
		maxServings: DefaultMaxServings,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init loads the recipe collection and restores persisted state. Only a
// failure to read recipes is an error; bad persisted state degrades to
// defaults.
func (e *Engine) Init(ctx context.Context) error {
	recipes, err := e.source.List(ctx)
	if err != nil {
		return fmt.Errorf("listing recipes: %w", err)
	}
	e.recipes = recipes
	e.byID = make(map[int]int, len(recipes))
	for i, r := range recipes {
		e.byID[r.ID] = i
	}

	e.savedTab = domain.TabHome
	if t, ok := domain.ParseTab(storage.Get(ctx, e.store, storage.KeyLastTab, string(domain.TabHome))); ok {
		e.savedTab = t
	}
	e.nav = router.NewMachine(e.savedTab, e.log, router.OnTransition(e.onTransition))

	e.filter = domain.NewFilterState()
	e.pages = filter.NewPaginator(e.pageSize)

	debounceOpts := []timer.Option{timer.WithDelay(e.searchDelay)}
	if e.dispatch != nil {
		debounceOpts = append(debounceOpts, timer.WithDispatch(e.dispatch))
	}
	e.search = timer.New(e.log, debounceOpts...)

	e.favs = favorites.New(storage.Get(ctx, e.store, storage.KeyFavorites, []int{}), e.store, e.log)
	e.list = shopping.New(storage.Get(ctx, e.store, storage.KeyShoppingList, []domain.ShoppingItem{}), e.store, e.log, e.shoppingOpts...)
	e.servings = e.decodeServings(storage.Get(ctx, e.store, storage.KeyServings, map[string]int{}))

	e.log.Info("loaded %d recipes; tab=%s favorites=%d list=%d overrides=%d",
		len(e.recipes), e.savedTab, e.favs.Len(), e.list.Len(), len(e.servings))
	return nil
}

// Close cancels any pending debounced search.
func (e *Engine) Close() {
	if e.search != nil {
		e.search.Stop()
	}
}

// decodeServings drops entries whose key is not an integer or whose value
// is out of range.
func (e *Engine) decodeServings(raw map[string]int) map[int]int {
	out := make(map[int]int, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil || v < 1 || v > e.maxServings {
			e.log.Warn("dropping servings override %q=%d", k, v)
			continue
		}
		out[id] = v
	}
	return out
}

func (e *Engine) encodeServings() map[string]int {
	out := make(map[string]int, len(e.servings))
	for id, v := range e.servings {
		out[strconv.Itoa(id)] = v
	}
	return out
}

// --- Recipes ---

// Recipes returns the full collection in source order.
func (e *Engine) Recipes() []domain.Recipe {
	return append([]domain.Recipe(nil), e.recipes...)
}

// Recipe looks up a recipe by id.
func (e *Engine) Recipe(id int) (*domain.Recipe, error) {
	i, ok := e.byID[id]
	if !ok {
		return nil, fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
	}
	r := e.recipes[i]
	return &r, nil
}
