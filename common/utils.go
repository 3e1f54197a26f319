package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// PrintError writes the single-line diagnostic used for every failed command.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}

// IsTTY checks if the given file is a TTY
func IsTTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// NewLogger creates a new zerolog logger with appropriate settings
// It configures colorful output when stderr is a TTY and sets the log level
// based on the verbose flag from the CLI context
func NewLogger(c *cli.Context) zerolog.Logger {
	// Set time format with millisecond precision
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	// Set global time function to use UTC
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// Determine log level based on verbose flag
	level := zerolog.FatalLevel
	if c.Bool("verbose") {
		level = zerolog.InfoLevel
	}
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	// Create console writer with colors if stderr is a TTY
	var consoleWriter io.Writer
	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	if f, ok := errWriter.(*os.File); ok && IsTTY(f) {
		consoleWriter = zerolog.ConsoleWriter{
			Out:        colorable.NewColorable(f),
			TimeFormat: "2006-01-02 15:04:05.000",
			NoColor:    false,
		}
	} else {
		consoleWriter = errWriter
	}

	name := AppName
	if c.Command != nil && c.Command.Name != "" {
		name = c.Command.Name
	}

	// Create and return configured logger
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Str("component", name).
		Logger()
}
