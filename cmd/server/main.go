package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/studentteacher/internal/server"
	"github.com/dmitrijs2005/studentteacher/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	app.Run(context.Background())
}
