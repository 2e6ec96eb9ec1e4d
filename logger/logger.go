package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger

	DurationAsString = true

	EmptyMessage = ""
)

func Log() *zerolog.Logger {
	return &log
}

func init() {
	setCallerFormatter()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

func setCallerFormatter() {
	_, file, _, _ := runtime.Caller(0)
	prefix := path.Dir(path.Dir(file))
	if len(prefix) > 0 && prefix[len(prefix)-1] != '/' {
		prefix += "/"
	}

	zerolog.CallerMarshalFunc = func(file string, line int) string {
		if index := strings.Index(file, prefix); index > -1 {
			file = file[index+len(prefix):]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
}

// SetWriter logs JSON lines to w.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetConsoleWriter logs human readable lines to w.
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

func SetLogger(logger zerolog.Logger) {
	log = logger
}

// SetFormat switches between "console" and "json" output on stderr.
func SetFormat(format string) error {
	switch format {
	case "", "console", "text":
		SetConsoleWriter(os.Stderr)
	case "json":
		SetWriter(os.Stderr)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// SetLevel sets the global level: trace, debug, info, warn, error or silent.
func SetLevel(level string) error {
	if level == "silent" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// doLog treats args as a message followed by key/value pairs.
// A leading error is attached with Err.
func doLog(event *zerolog.Event, args []interface{}) {
	if len(args) == 0 {
		event.Msg(EmptyMessage)
		return
	}
	if err, ok := args[0].(error); ok {
		event.Err(err)
		args = args[1:]
	}
	msg := EmptyMessage
	if len(args)%2 == 1 {
		msg = fmt.Sprint(args[0])
		args = args[1:]
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprint(args[i])
		}
		switch v := args[i+1].(type) {
		case string:
			event.Str(k, v)
		case int:
			event.Int(k, v)
		case int64:
			event.Int64(k, v)
		case uint64:
			event.Uint64(k, v)
		case float64:
			event.Float64(k, v)
		case bool:
			event.Bool(k, v)
		case error:
			event.AnErr(k, v)
		case time.Duration:
			if DurationAsString {
				event.Str(k, v.String())
			} else {
				event.Dur(k, v)
			}
		default:
			event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

// Trace logs a message at level Trace on the standard logger.
func Trace(args ...interface{}) {
	doLog(log.Trace(), args)
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	doLog(log.Debug(), args)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	doLog(log.Info(), args)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	doLog(log.Warn(), args)
}

// Error logs a message at level Error on the standard logger.
func Error(err error, args ...interface{}) {
	doLog(log.Error().Err(err), args)
}
