package logger

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"strconv"
	"strings"
)

// applicationNameField - Field carrying the application name, printed first on every line
const applicationNameField = "applicationName"

// TimeFormat - Time format of the console output
const TimeFormat = "02-01-2006 15:04:05.000"

// New - Returns a console logger writing to out.
//   - appName is printed at the start of every line, it must be given
//   - logLevel is one of DEBUG, INFO, WARN, ERROR, FATAL, PANIC and DISABLED, an empty level defaults to WARN
func New(out io.Writer, appName, logLevel string) (logger zerolog.Logger, err error) {
	if len(appName) == 0 {
		err = fmt.Errorf("application name is not set")
		return
	}

	level, err := ParseLevel(logLevel)
	if err != nil {
		return
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimeFormat,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%-6s", i))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
		FormatCaller: func(i interface{}) string {
			return shortCaller(fmt.Sprintf("%s", i))
		},
		FieldsExclude: []string{
			applicationNameField,
		},
		PartsOrder: []string{
			applicationNameField,
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger = zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str(applicationNameField, appName).
		Logger()

	return
}

// ParseLevel - Translates a level name to a zerolog level, an empty name gives WARN
func ParseLevel(logLevel string) (level zerolog.Level, err error) {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "", "WARN":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	case "FATAL":
		level = zerolog.FatalLevel
	case "PANIC":
		level = zerolog.PanicLevel
	case "DISABLED":
		level = zerolog.Disabled
	default:
		err = fmt.Errorf("incorrect log level - %s", logLevel)
	}

	return
}

// shortCaller - Keeps the file name and line of a caller, dropping the directory
func shortCaller(caller string) string {
	i := strings.LastIndexByte(caller, ':')
	if i < 0 {
		return caller
	}
	if _, err := strconv.Atoi(caller[i+1:]); err != nil {
		return caller
	}

	file := caller[:i]
	if j := strings.LastIndexByte(file, '/'); j >= 0 {
		file = file[j+1:]
	}

	return file + caller[i:]
}
