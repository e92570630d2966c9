package main

import (
	"context"

	"github.com/niksmo/inventory-pos/config"
	"github.com/niksmo/inventory-pos/internal/app"
	"github.com/niksmo/inventory-pos/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	inventory := app.New(sigCtx, cfg)

	inventory.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(
		context.Background(), cfg.HTTP.ShutdownTimeout,
	)
	defer cancel()

	inventory.Close(ctx)
}
