package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/config"
)

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.App.LogLevel) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.App.Environment == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log = zerolog.New(writer).Level(level).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
