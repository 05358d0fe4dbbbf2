package display

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
)

var (
	errQuit       = errors.New("quit")
	errDetailOpen = errors.New("close the recipe first (back)")
)

// background intents act on the tab behind a recipe detail and are
// blocked while the detail is open.
var background = map[domain.IntentType]bool{
	domain.IntentSearch:       true,
	domain.IntentCategory:     true,
	domain.IntentToggleFilter: true,
	domain.IntentLoadMore:     true,
	domain.IntentCheckItem:    true,
	domain.IntentClearChecked: true,
	domain.IntentClearAll:     true,
}

// apply runs one intent against the engine and returns a status line.
func apply(ctx context.Context, e *engine.Engine, in *domain.Intent) (string, error) {
	if e.DetailOpen() && background[in.Type] {
		return "", errDetailOpen
	}

	switch in.Type {
	case domain.IntentNavigate:
		return "", e.Navigate(ctx, in.Payload)

	case domain.IntentOpenRecipe:
		id, err := strconv.Atoi(in.Payload)
		if err != nil {
			return "", fmt.Errorf("recipe %q: %w", in.Payload, domain.ErrInvalidRoute)
		}
		return "", e.OpenRecipe(ctx, id)

	case domain.IntentCloseDetail:
		return "", e.CloseDetail(ctx)

	case domain.IntentSearch:
		e.SetSearch(in.Payload)
		return "", nil

	case domain.IntentCategory:
		e.SetCategory(in.Payload)
		return "", nil

	case domain.IntentToggleFilter:
		on, err := e.ToggleQuickFilter(domain.QuickFilter(in.Payload))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s", in.Payload, onOff(on)), nil

	case domain.IntentLoadMore:
		if !e.LoadMore() {
			return "Nothing more to load", nil
		}
		return "", nil

	case domain.IntentToggleFavorite:
		id, err := target(e, in.Payload)
		if err != nil {
			return "", err
		}
		on, err := e.ToggleFavorite(ctx, id)
		if err != nil {
			return "", err
		}
		if on {
			return "Added to favorites", nil
		}
		return "Removed from favorites", nil

	case domain.IntentServingsUp, domain.IntentServingsDown:
		id, ok := e.OpenRecipeID()
		if !ok {
			return "", domain.ErrNoDetailOpen
		}
		delta := 1
		if in.Type == domain.IntentServingsDown {
			delta = -1
		}
		_, err := e.AdjustServings(ctx, id, delta)
		return "", err

	case domain.IntentAddToList:
		id, err := target(e, in.Payload)
		if err != nil {
			return "", err
		}
		_, err = e.AddToList(ctx, id)
		return "", err

	case domain.IntentCheckItem:
		pos, err := strconv.Atoi(in.Payload)
		if err != nil {
			return "", fmt.Errorf("item %q: %w", in.Payload, domain.ErrNotFound)
		}
		_, err = e.CheckAt(ctx, pos)
		return "", err

	case domain.IntentClearChecked:
		n := e.ClearChecked(ctx)
		return fmt.Sprintf("Cleared %d checked items", n), nil

	case domain.IntentClearAll:
		e.ClearAll(ctx)
		return "Shopping list cleared", nil

	case domain.IntentHelp:
		return HelpText(), nil

	case domain.IntentQuit:
		return "", errQuit

	default:
		return "", fmt.Errorf("%q: %w (try help)", in.Payload, domain.ErrUnknownCommand)
	}
}

// target resolves an optional recipe id argument, falling back to the
// open detail.
func target(e *engine.Engine, payload string) (int, error) {
	if payload == "" {
		if id, ok := e.OpenRecipeID(); ok {
			return id, nil
		}
		return 0, domain.ErrNoDetailOpen
	}
	id, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("recipe %q: %w", payload, domain.ErrInvalidRoute)
	}
	return id, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
