package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var app application

	cliApp := &cli.App{
		Name:  "meetfinder",
		Usage: "Find meeting windows within a day of busy events.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the yaml config",
				EnvVars: []string{"MEETFINDER_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "environment (dev, prod), overrides the config",
			},
		},
		Before: app.setup,
		Commands: []*cli.Command{
			app.findCommand(),
			app.checkCommand(),
		},
	}

	err := cliApp.RunContext(ctx, os.Args)
	if err != nil {
		stdlog.Println(err)
		os.Exit(1)
	}
}
