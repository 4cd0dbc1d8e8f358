// internal/segment/writer.go
package segment

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"

	"github.com/stagebridge/ontime-bridge/internal/timer"
)

// Port is the slice of the serial port the writer needs
// (and the seam for test fakes).
type Port interface {
	Write(p []byte) (n int, err error)
	Close() error
}

// PortFactory creates a serial port connection.
type PortFactory func(device string, mode *serial.Mode) (Port, error)

// DefaultPortFactory opens real serial ports.
func DefaultPortFactory(device string, mode *serial.Mode) (Port, error) {
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	return port, nil
}

// Writer pushes update frames at the legacy numeric display.
// The display never acknowledges; writes are fire-and-forget.
type Writer struct {
	port Port
}

// NewWriter wraps an already-open port.
func NewWriter(port Port) *Writer {
	return &Writer{port: port}
}

// Open opens the device 8N1 at the given rate and returns a Writer.
func Open(device string, baud int) (*Writer, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := DefaultPortFactory(device, mode)
	if err != nil {
		return nil, err
	}

	return NewWriter(port), nil
}

// WriteFrame encodes and sends one update. A failed write is logged
// and otherwise ignored: the receiver has no error channel and the
// bridge must keep running on the best available information.
func (w *Writer) WriteFrame(t timer.DisplayTime, c timer.Class) {
	frame := EncodeFrame(t, c)
	if _, err := w.port.Write(frame[:]); err != nil {
		log.Warn().Err(err).Msg("segment: frame write failed")
	}
}

// Close closes the underlying port.
func (w *Writer) Close() error {
	if w == nil || w.port == nil {
		return nil
	}
	return w.port.Close()
}
