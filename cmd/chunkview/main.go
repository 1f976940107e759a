package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"chunkview/internal/applog"
	"chunkview/internal/config"
	"chunkview/internal/game"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "chunkview: %v\n", err)
		os.Exit(2)
	}

	log, err := applog.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chunkview: %v\n", err)
		os.Exit(2)
	}

	if err := game.RunDesktop(cfg, log); err != nil {
		log.WithError(err).Fatal("chunkview exited")
	}
}
