// Package main provides the ndarray CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/born-ml/ndarray/structures"
)

const version = "v0.1.0-dev"

// config holds the global flags.
type config struct {
	LogLevel string
}

// defaultConfig returns the flag defaults.
func defaultConfig() config {
	return config{LogLevel: "info"}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	cfg := defaultConfig()

	app := kingpin.New("ndarray", "Inspect strided N-dimensional structure layouts.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(nil)
	app.Flag("log.level", "Log level: debug, info, warn, error.").Default(cfg.LogLevel).EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")

	var logger log.Logger
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(stderr, cfg.LogLevel)
		structures.SetLogger(logger)
		return nil
	})

	app.Command("version", "Show version.").Action(func(*kingpin.ParseContext) error {
		fmt.Fprintf(stdout, "ndarray %s\n", version)
		return nil
	})
	addStridesCommand(app, stdout, func() log.Logger { return logger })

	_, err := app.Parse(args)
	return err
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
