package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trademinutes/tmclient/internal/buildinfo"
	"github.com/trademinutes/tmclient/internal/client/cli"
	"github.com/trademinutes/tmclient/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
