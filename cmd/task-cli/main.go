package main

import (
	"context"
	"fmt"
	"os"
	"taskcli/internal/app"
	"taskcli/internal/config"

	"go.uber.org/multierr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "task-cli:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a := app.New(cfg, os.Stdin, os.Stdout)
	defer func() {
		err = multierr.Append(err, a.Close())
	}()

	if err := a.Init(ctx); err != nil {
		return err
	}
	return a.Run(ctx)
}
