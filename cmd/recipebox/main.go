// Recipebox is a terminal recipe browser with servings scaling, favorites,
// and a merged shopping list.
//
// Usage:
//
//	recipebox [browse|list|show|fav|shop] [--config path] [--verbose] [--quiet]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
