package main

import (
	"context"
	"log"

	"github.com/ddmitrenko/tools/internal/account"
	"github.com/ddmitrenko/tools/internal/account/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := account.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
