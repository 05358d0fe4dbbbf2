package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one CLI invocation against the state directory in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RECIPEBOX_STORE", "file")
	t.Setenv("RECIPEBOX_DIR", dir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--quiet", "--log-file", "stderr",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListFilters(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "list", "--category", "quick", "--vegan")
	require.NoError(t, err)
	assert.Contains(t, out, "Avocado Toast Supreme")
	assert.Contains(t, out, "Berry Smoothie Bowl")
	assert.Contains(t, out, "Vegetable Stir Fry")
	assert.NotContains(t, out, "Classic Chicken Caesar Salad")
	assert.NotContains(t, out, "Load More")

	out, err = run(t, dir, "list", "--search", "nothing-matches-this")
	require.NoError(t, err)
	assert.Contains(t, out, "No recipes found")

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Load More (2 remaining)")
}

func TestShowPersistsServings(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "show", "2", "--servings", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "4 tbsp")
	assert.Contains(t, out, "Olive oil")

	// Servings survive to the next invocation.
	out, err = run(t, dir, "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "] 8 [")

	_, err = run(t, dir, "show", "2", "--servings", "13")
	assert.Error(t, err)

	_, err = run(t, dir, "show", "99")
	assert.Error(t, err)

	_, err = run(t, dir, "show", "abc")
	assert.Error(t, err)
}

func TestFavToggle(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "fav", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Chocolate Chip Cookies to favorites")

	out, err = run(t, dir, "list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Chocolate Chip Cookies")

	out, err = run(t, dir, "fav", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Chocolate Chip Cookies from favorites")

	out, err = run(t, dir, "list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorites yet")
}

func TestShopFlow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "shop", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Shopping List Empty")

	out, err = run(t, dir, "shop", "add", "6", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 7 ingredients from Beef Stir Fry to your shopping list")
	assert.Contains(t, out, "Added 10 ingredients from Vegetable Stir Fry to your shopping list")

	out, err = run(t, dir, "shop", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 11 items")
	assert.Equal(t, 1, strings.Count(out, "Soy sauce"))

	out, err = run(t, dir, "shop", "check", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "checked Beef strips")

	out, err = run(t, dir, "shop", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 11 items")

	_, err = run(t, dir, "shop", "check", "40")
	assert.Error(t, err)

	out, err = run(t, dir, "shop", "clear", "--checked")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 checked items")

	out, err = run(t, dir, "shop", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Shopping list cleared")

	out, err = run(t, dir, "shop", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Shopping List Empty")
}
