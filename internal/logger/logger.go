package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger: console output, plus a rotating log file
// when logFile is non-empty.
func New(level, logFile string) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var w io.Writer = consoleWriter
	if logFile != "" {
		rotating := &lumberjack.Logger{
			Filename: logFile,
			MaxSize:  10, // MB
			MaxAge:   15, // days
			Compress: true,
		}
		w = zerolog.MultiLevelWriter(consoleWriter, rotating)
	}

	l := zerolog.New(w).With().Timestamp().Logger()

	switch level {
	case "debug":
		l = l.Level(zerolog.DebugLevel)
	case "warn":
		l = l.Level(zerolog.WarnLevel)
	case "error":
		l = l.Level(zerolog.ErrorLevel)
	default:
		l = l.Level(zerolog.InfoLevel)
	}

	return l
}
