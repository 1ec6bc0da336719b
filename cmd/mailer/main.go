package main

import (
	"context"
	"log"

	"github.com/ddmitrenko/tools/internal/mailer"
	"github.com/ddmitrenko/tools/internal/mailer/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := mailer.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
