// internal/engine/engine.go

// Package engine is the translation core: it turns extracted timer
// snapshots into legacy display frames and local display rows, and
// advances the title scroll on its own cadence.
//
// All state lives on one goroutine (Run); message handling and scroll
// ticks interleave through a single select, so a title change and its
// cursor reset are atomic with respect to tick observation.
package engine

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/stagebridge/ontime-bridge/internal/display"
	"github.com/stagebridge/ontime-bridge/internal/ontime"
	"github.com/stagebridge/ontime-bridge/internal/timer"
	"github.com/stagebridge/ontime-bridge/internal/transport"
)

// ScrollInterval is the title scroll cadence.
const ScrollInterval = 400 * time.Millisecond

// FrameSink receives encoded updates for the legacy numeric display.
type FrameSink interface {
	WriteFrame(t timer.DisplayTime, c timer.Class)
}

// connEvent is one observed transport lifecycle transition.
type connEvent uint8

const (
	connUp connEvent = iota
	connDown
	connError
)

// Engine drives both outputs from inbound messages and the scroll
// ticker. Construct with New, wire Events() into the transport, then
// call Run.
type Engine struct {
	clock clockwork.Clock
	dev   display.Device
	sink  FrameSink

	scroll display.Scroller

	msgs chan []byte
	conn chan connEvent
}

// New creates an engine. The clock is injectable so the scroll
// cadence can be driven from tests.
func New(clock clockwork.Clock, dev display.Device, sink FrameSink) *Engine {
	return &Engine{
		clock: clock,
		dev:   dev,
		sink:  sink,
		msgs:  make(chan []byte, 8),
		conn:  make(chan connEvent, 4),
	}
}

// Events returns transport callbacks feeding this engine. The
// callbacks never block: if the engine falls behind, the oldest
// pending update is the one that matters least, so new input is
// dropped with a log instead of stalling the read loop.
func (e *Engine) Events() transport.Events {
	return transport.Events{
		OnConnected:    func() { e.pushConn(connUp) },
		OnDisconnected: func() { e.pushConn(connDown) },
		OnError:        func(error) { e.pushConn(connError) },
		OnMessage: func(raw []byte) {
			select {
			case e.msgs <- raw:
			default:
				log.Warn().Msg("engine: message queue full, dropping update")
			}
		},
	}
}

func (e *Engine) pushConn(ev connEvent) {
	select {
	case e.conn <- ev:
	default:
		log.Warn().Msg("engine: connection event queue full")
	}
}

// Run services messages, connection transitions and the scroll tick
// until ctx is cancelled. It owns all display state.
func (e *Engine) Run(ctx context.Context) {
	e.writeRow(display.RowTitle, "Disconnected!")

	ticker := e.clock.NewTicker(ScrollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-e.msgs:
			e.handleMessage(raw)
		case ev := <-e.conn:
			e.handleConn(ev)
		case <-ticker.Chan():
			e.tickScroll()
		}
	}
}

// handleMessage applies one inbound message: title first, then the
// timer-derived frame and status row. A message without a timer
// object is a title-only update; a title-less message keeps the
// previously displayed title.
func (e *Engine) handleMessage(raw []byte) {
	snap := ontime.Extract(raw)
	if snap == nil {
		return
	}

	if snap.HasTitle && e.scroll.SetTitle(snap.Title) {
		e.writeRow(display.RowTitle, e.scroll.Window())
	}

	if !snap.HasTimer {
		return
	}

	t := timer.Format(snap.ElapsedMs)
	st := timer.Resolve(timer.Inputs{
		Color:       snap.Color,
		HasColor:    snap.HasColor,
		Phase:       snap.Phase,
		HasPhase:    snap.HasPhase,
		Playback:    snap.Playback,
		HasPlayback: snap.HasPlayback,
		Negative:    t.Negative,
	})

	e.sink.WriteFrame(t, st.Class)
	e.writeRow(display.RowStatus, display.StatusLine(st.Label, t))
}

// tickScroll advances the title row. Static titles skip the redraw.
func (e *Engine) tickScroll() {
	if line, moved := e.scroll.Tick(); moved {
		e.writeRow(display.RowTitle, line)
	}
}

// handleConn reflects a transport transition onto the display.
// "WS Error!" deliberately leaves the status row untouched so the
// last known time stays visible.
func (e *Engine) handleConn(ev connEvent) {
	switch ev {
	case connUp:
		e.writeRow(display.RowTitle, "Connected!")
		e.writeRow(display.RowStatus, "Waiting data...")
	case connDown:
		e.writeRow(display.RowTitle, "Disconnected!")
	case connError:
		e.writeRow(display.RowTitle, "WS Error!")
	}
}

func (e *Engine) writeRow(row int, text string) {
	if err := e.dev.WriteRow(row, display.PadRow(text)); err != nil {
		log.Warn().Err(err).Int("row", row).Msg("engine: display write failed")
	}
}
