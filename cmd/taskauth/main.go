package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/taskvault/taskvault/internal/client/cli"
	"github.com/taskvault/taskvault/internal/client/config"
)

func main() {

	ctx := context.Background()

	fs := flag.NewFlagSet("taskauth", flag.ExitOnError)
	cfg, args := config.LoadConfig(fs, os.Args[1:])

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}

}
