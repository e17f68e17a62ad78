package main

import (
	"context"
	"log"

	"github.com/ledgerline/ledgerline-cli/internal/client/cli"
	"github.com/ledgerline/ledgerline-cli/internal/client/config"

	_ "modernc.org/sqlite"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
