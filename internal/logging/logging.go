// internal/logging/logging.go
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stagebridge/ontime-bridge/internal/config"
)

// Setup configures the global logger: console output plus a small
// rotating file so the device's flash is never filled by log growth.
func Setup(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr},
		&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    1,
			MaxBackups: 2,
		},
	}

	log.Logger = log.Output(io.MultiWriter(writers...)).
		With().Timestamp().Logger()
}
