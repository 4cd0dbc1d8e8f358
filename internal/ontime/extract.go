// internal/ontime/extract.go
package ontime

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Wire shape of an ontime websocket message. Every field is a pointer:
// the extractor must distinguish "absent" from "zero" for all of them.
type wireMessage struct {
	Payload *wirePayload `json:"payload"`
}

type wirePayload struct {
	EventNow *wireEvent `json:"eventNow"`
	Timer    *wireTimer `json:"timer"`
}

type wireEvent struct {
	Title *string `json:"title"`
}

type wireTimer struct {
	Label    *string `json:"label"`
	Title    *string `json:"title"`
	Current  *int64  `json:"current"`
	Color    *string `json:"color"`
	Colour   *string `json:"colour"`
	Phase    *string `json:"phase"`
	Playback *string `json:"playback"`
}

// Extract pulls the display-relevant fields out of one raw message.
// A nil result means the message carried nothing usable (malformed
// JSON or no payload object); that is not an error condition.
func Extract(raw []byte) *Snapshot {
	var msg wireMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Debug().Err(err).Msg("ontime: discarding malformed message")
		return nil
	}

	if msg.Payload == nil {
		return nil
	}

	var snap Snapshot

	if ev := msg.Payload.EventNow; ev != nil && ev.Title != nil {
		snap.Title = *ev.Title
		snap.HasTitle = true
	}

	tm := msg.Payload.Timer
	if tm == nil {
		// Title-only update.
		return &snap
	}

	snap.HasTimer = true

	// The timer's own naming wins over eventNow; label wins over title.
	switch {
	case tm.Label != nil:
		snap.Title = *tm.Label
		snap.HasTitle = true
	case tm.Title != nil:
		snap.Title = *tm.Title
		snap.HasTitle = true
	}

	if tm.Current != nil {
		snap.ElapsedMs = *tm.Current
	}

	// Upstream emits either spelling depending on version.
	switch {
	case tm.Color != nil:
		snap.Color = *tm.Color
		snap.HasColor = true
	case tm.Colour != nil:
		snap.Color = *tm.Colour
		snap.HasColor = true
	}

	if tm.Phase != nil {
		snap.Phase = *tm.Phase
		snap.HasPhase = true
	}

	if tm.Playback != nil {
		snap.Playback = *tm.Playback
		snap.HasPlayback = true
	}

	return &snap
}
