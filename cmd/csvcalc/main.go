package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/AbrarS242/csv-analyser/internal/config"
	"github.com/AbrarS242/csv-analyser/internal/engine"
	"github.com/AbrarS242/csv-analyser/internal/logging"
	"github.com/AbrarS242/csv-analyser/internal/session"
	"github.com/AbrarS242/csv-analyser/internal/storage/csvstore"
)

var (
	app = kingpin.New("csvcalc",
		"Interactive calculations on numeric CSV data files.")

	configPath = app.Flag("config", "The configuration file.").Short('c').
			Envar("CSVCALC_CONFIG").String()

	verbose = app.Flag("verbose", "Enable debug logging to stderr.").Short('v').
		Bool()

	csvPath = app.Arg("file", "The CSV file to load.").Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	kingpin.FatalIfError(err, "Load config")

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(level, os.Stderr)
	kingpin.FatalIfError(err, "Logging")

	loader := csvstore.New(cfg.StorageLimits(), logging.Component(logger, "csvstore"))
	tbl, err := loader.Load(*csvPath)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("    csv data loaded from %s (%d rows by %d cols)\n",
		*csvPath, tbl.Rows(), tbl.Cols())

	eng := engine.New(tbl, os.Stdout, cfg.EngineOptions(),
		logging.Component(logger, "engine"))

	styled := isatty.IsTerminal(os.Stdout.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdout.Fd())

	s := session.New(eng, os.Stdin, os.Stdout, styled,
		logging.Component(logger, "session"))
	if err := s.Run(); err != nil {
		logging.Component(logger, "main").WithError(err).Error("session ended")
		os.Exit(1)
	}
}
