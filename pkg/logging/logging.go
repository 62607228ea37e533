package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls how the global logger is set up for one run.
type Options struct {
	// Verbosity raises the level: 0 INFO, 1 DEBUG, 2+ TRACE
	Verbosity int

	// LogFile is the per-run log file path; empty means console only
	LogFile string

	// NoColor disables ANSI colors on the console writer
	NoColor bool
}

// fileSink is kept so the supervisor's cleanup path can flush and close it.
var fileSink *lumberjack.Logger

// Setup configures the global logger: a pretty console writer on stderr
// multiplexed with the per-run log file. The file side is append-only and
// size-capped through lumberjack so a chatty run cannot fill the state dir.
func Setup(opts Options) {
	switch opts.Verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{consoleWriter}

	var fileErr error
	if opts.LogFile != "" {
		if fileErr = os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); fileErr == nil {
			fileSink = &lumberjack.Logger{
				Filename:   opts.LogFile,
				MaxSize:    10, // MB
				MaxBackups: 3,
			}
			writers = append(writers, fileSink)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to create log file, logging to console only")
	}

	// Caller info is only worth the noise at trace level
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.LogFile).Msg("Logger initialized")
}

// Close flushes and closes the file sink. Called exactly once from the
// supervisor's cleanup path.
func Close() {
	if fileSink != nil {
		_ = fileSink.Close()
		fileSink = nil
	}
}

// GetLogger returns a logger scoped to the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Success logs an INFO event carrying the success marker. The report log
// section distinguishes these from plain progress chatter.
func Success(logger zerolog.Logger, msg string) {
	logger.Info().Bool("success", true).Msg(msg)
}

// LogCommand logs an external command invocation with its arguments.
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}
