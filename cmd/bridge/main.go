// cmd/bridge/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/stagebridge/ontime-bridge/internal/config"
	"github.com/stagebridge/ontime-bridge/internal/display/hd44780"
	"github.com/stagebridge/ontime-bridge/internal/engine"
	"github.com/stagebridge/ontime-bridge/internal/logging"
	"github.com/stagebridge/ontime-bridge/internal/segment"
	"github.com/stagebridge/ontime-bridge/internal/transport"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: bridge <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}

	config.Normalize(cfg)
	logging.Setup(cfg.Bridge.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Output sinks
	// --------------------

	seg, err := segment.Open(cfg.Bridge.Serial.Device, cfg.Bridge.Serial.Baud)
	if err != nil {
		log.Fatal().Err(err).Str("device", cfg.Bridge.Serial.Device).
			Msg("serial open failed")
	}
	defer func() {
		if err := seg.Close(); err != nil {
			log.Warn().Err(err).Msg("serial close failed")
		}
	}()

	lcd, err := hd44780.Open(cfg.Bridge.Display.Bus, cfg.Bridge.Display.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("display open failed")
	}
	defer func() {
		if err := lcd.Close(); err != nil {
			log.Warn().Err(err).Msg("display close failed")
		}
	}()

	// --------------------
	// Engine + transport
	// --------------------

	eng := engine.New(clockwork.NewRealClock(), lcd, seg)
	go eng.Run(ctx)

	client := transport.New(cfg.Bridge.Ontime.Host, cfg.Bridge.Ontime.Port, eng.Events())
	log.Info().Str("url", client.URL()).Msg("bridge starting")

	client.Run(ctx)
}
