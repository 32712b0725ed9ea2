package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"stepFetcher/pkg/config"
	"stepFetcher/pkg/fetcher"
	"stepFetcher/pkg/logger"
)

type flags struct {
	config   string
	override config.Config
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := pflag.NewFlagSet("stepfetch", pflag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "path to a stepfetch.yaml")
	fs.StringVarP(&f.override.Folder, "folder", "o", "", "destination folder")
	fs.DurationVar(&f.override.Timeout, "timeout", 0, "limit for a single step, 0 waits forever")
	fs.BoolVarP(&f.override.Debug, "debug", "d", false, "verbose logs on stderr")
	fs.BoolVar(&f.override.Progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVar(&f.override.Log.JSON, "log-json", false, "log as json")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	// positional args replace the url list
	f.override.URLs = fs.Args()
	return f, nil
}

func newLogger(c config.Config) *logger.Logger {
	var log *logger.Logger
	if c.Log.JSON {
		log = logger.New(c.Debug)
	} else {
		log = logger.NewConsole(c.Debug, "fetch", c.Log.NoColor)
	}
	return log.Extend(log.With().Str("run", uuid.NewString()))
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	c, err := config.Load(f.config)
	if err != nil {
		logger.NewConsole(false, "fetch", false).Error().Err(err).Msg("config")
		os.Exit(1)
	}
	c = c.Merge(f.override)
	log := newLogger(c)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc, err := fetcher.NewFromConfig(c, fetcher.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("init")
		os.Exit(1)
	}
	log.Debug().Int("urls", len(c.URLs)).Str("folder", c.Folder).Msg("start")
	sc.Run(ctx)
}
