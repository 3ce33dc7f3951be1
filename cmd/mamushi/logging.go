package main

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newLogger builds the stderr console logger: errors only with --quiet,
// debug with --verbose, info otherwise.
func newLogger(cmd *cobra.Command, out io.Writer) (zerolog.Logger, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return zerolog.Logger{}, err
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return zerolog.Logger{}, err
	}

	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.ErrorLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, NoColor: color.NoColor, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}
