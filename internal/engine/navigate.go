package engine

import (
	"context"
	"errors"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/router"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// Route returns the visible view.
func (e *Engine) Route() router.Route { return e.nav.Current() }

// Tab returns the active tab, including while a detail covers it.
func (e *Engine) Tab() domain.Tab { return e.nav.Tab() }

// DetailOpen reports whether a recipe detail is showing.
func (e *Engine) DetailOpen() bool { return e.nav.Modal() }

// OpenRecipeID returns the id of the open detail.
func (e *Engine) OpenRecipeID() (int, bool) { return e.nav.Detail() }

// Navigate follows a location hash. An unknown tab name closes any open
// detail and leaves the tab as is. A malformed or unknown recipe route
// opens nothing. The error reports why nothing opened.
func (e *Engine) Navigate(ctx context.Context, hash string) error {
	r, err := router.Parse(hash)
	switch {
	case errors.Is(err, router.ErrUnknownTab):
		e.log.Debug("navigate %q: %v", hash, err)
		_ = e.nav.Close()
		return err
	case err != nil:
		e.log.Debug("navigate %q: %v", hash, err)
		return err
	}

	if r.IsDetail() {
		return e.OpenRecipe(ctx, r.RecipeID)
	}
	e.SelectTab(ctx, r.Tab)
	return nil
}

// SelectTab switches tabs, closing any open detail.
func (e *Engine) SelectTab(ctx context.Context, t domain.Tab) {
	e.nav.Go(router.TabRoute(t))
	e.persistTab(ctx)
}

// OpenRecipe shows the detail for id over the current tab.
func (e *Engine) OpenRecipe(ctx context.Context, id int) error {
	if _, err := e.Recipe(id); err != nil {
		return err
	}
	e.nav.Go(router.RecipeRoute(id))
	return nil
}

// CloseDetail returns to the tab behind the open detail.
func (e *Engine) CloseDetail(ctx context.Context) error {
	if err := e.nav.Close(); err != nil {
		return err
	}
	e.persistTab(ctx)
	return nil
}

func (e *Engine) persistTab(ctx context.Context) {
	if t := e.nav.Tab(); t != e.savedTab {
		e.savedTab = t
		e.store.Set(ctx, storage.KeyLastTab, t)
	}
}

// onTransition runs the entry actions of the new view.
func (e *Engine) onTransition(from, to router.Route) {
	if to.IsDetail() {
		e.log.Debug("detail %d open; background suspended", to.RecipeID)
		return
	}
	if to.Tab == domain.TabHome && e.savedTab != domain.TabHome {
		e.pages.Reset()
	}
}
