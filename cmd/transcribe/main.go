package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/transcribe/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		inputURL     string
		outputPath   string
		action       string
		separator    string
		timestamps   bool
		selContainer string
		selTimestamp string
		selContent   string
		userAgent    string
		configPath   string
		verbose      bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the input HTML document ('-' or empty reads stdin)")
	flag.StringVar(&inputURL, "url", "", "URL of the input HTML document (takes precedence over -input)")
	flag.StringVar(&outputPath, "output", "", "Output path for save/pdf actions (default transcript.txt or transcript.pdf)")
	flag.StringVar(&action, "action", app.ActionDefault, "Operation to perform: text | copy | save | pdf | summary")
	flag.StringVar(&separator, "sep", app.SeparatorDefault, "Separator between transcript pieces")
	flag.BoolVar(&timestamps, "timestamps", false, "Prefix each piece with its timestamp")
	flag.StringVar(&selContainer, "selector.container", "", `Container selector override, e.g. div[data-purpose="transcript-panel"]`)
	flag.StringVar(&selTimestamp, "selector.timestamp", "", "Class name marking the timestamp field")
	flag.StringVar(&selContent, "selector.content", "", "Class name marking the content field")
	flag.StringVar(&userAgent, "ua", app.UserAgentDefault, "Custom User-Agent for -url fetches")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:         inputPath,
		InputURL:          inputURL,
		OutputPath:        outputPath,
		Action:            app.Action(action),
		IncludeTimestamps: timestamps,
		Separator:         separator,
		ContainerSelector: selContainer,
		TimestampClass:    selTimestamp,
		ContentClass:      selContent,
		UserAgent:         userAgent,
		Verbose:           verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Msg("load config file failed")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: nonzero only when the input document cannot be
		// read at all. An empty transcript in a readable document is a
		// warning, not a failure.
		if errors.Is(err, app.ErrNoDocument) {
			os.Exit(2)
		}
		os.Exit(0)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}
