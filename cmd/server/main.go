package main

import (
	"context"
	"log"
	"os"

	"github.com/avelis/daybook/internal/server"
	"github.com/avelis/daybook/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
