// internal/display/hd44780/hd44780.go

// Package hd44780 drives an HD44780-compatible 16x2 character display
// behind a PCF8574 I2C backpack, in 4-bit mode.
package hd44780

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/stagebridge/ontime-bridge/internal/display"
)

// PCF8574 pin mapping (standard backpack wiring).
const (
	pinRS        byte = 0x01
	pinEnable    byte = 0x04
	pinBacklight byte = 0x08
)

// Controller commands.
const (
	cmdClear        byte = 0x01
	cmdEntryMode    byte = 0x06 // increment, no shift
	cmdDisplayOn    byte = 0x0C // display on, cursor off, blink off
	cmdFunctionSet  byte = 0x28 // 4-bit, 2 lines, 5x8 font
	cmdSetDDRAMAddr byte = 0x80
)

// DDRAM start address per row.
var rowAddr = [2]byte{0x00, 0x40}

// Display is a display.Device backed by real hardware.
type Display struct {
	dev    i2c.Dev
	closer func() error
}

var _ display.Device = (*Display)(nil)

// Open initializes the host, opens the named I2C bus (empty name
// selects the first available) and runs the controller's 4-bit
// init sequence.
func Open(bus string, addr uint16) (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hd44780: host init: %w", err)
	}

	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("hd44780: open bus %q: %w", bus, err)
	}

	d := &Display{
		dev:    i2c.Dev{Bus: b, Addr: addr},
		closer: b.Close,
	}

	if err := d.init(); err != nil {
		_ = b.Close()
		return nil, err
	}

	return d, nil
}

func (d *Display) init() error {
	// Reset into 8-bit mode three times, then drop to 4-bit.
	// Datasheet timing: >4.1ms after the first reset nibble.
	time.Sleep(50 * time.Millisecond)
	for _, n := range []byte{0x30, 0x30, 0x30, 0x20} {
		if err := d.strobe(n); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}

	for _, cmd := range []byte{cmdFunctionSet, cmdDisplayOn, cmdEntryMode, cmdClear} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	time.Sleep(2 * time.Millisecond) // clear is slow

	return nil
}

// WriteRow writes a full line to the given row. Input longer than the
// display width is truncated; the engine always sends padded lines.
func (d *Display) WriteRow(row int, text string) error {
	if row < 0 || row >= len(rowAddr) {
		return fmt.Errorf("hd44780: row %d out of range", row)
	}

	if err := d.command(cmdSetDDRAMAddr | rowAddr[row]); err != nil {
		return err
	}

	n := 0
	for _, r := range text {
		if n >= display.Width {
			break
		}
		c := byte(r)
		if r > 0x7E {
			c = '?'
		}
		if err := d.data(c); err != nil {
			return err
		}
		n++
	}

	return nil
}

// Clear wipes both rows.
func (d *Display) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	time.Sleep(2 * time.Millisecond)
	return nil
}

// Close clears the display and releases the bus.
func (d *Display) Close() error {
	if d == nil || d.closer == nil {
		return nil
	}
	_ = d.Clear()
	return d.closer()
}

// ---- low-level nibble transfer ----

func (d *Display) command(b byte) error {
	return d.write(b, 0)
}

func (d *Display) data(b byte) error {
	return d.write(b, pinRS)
}

// write sends one byte as two nibbles with the given control bits.
func (d *Display) write(b, ctrl byte) error {
	if err := d.strobe(b&0xF0 | ctrl); err != nil {
		return err
	}
	return d.strobe(b<<4&0xF0 | ctrl)
}

// strobe latches one nibble by pulsing Enable around it.
func (d *Display) strobe(n byte) error {
	n |= pinBacklight
	for _, out := range []byte{n | pinEnable, n} {
		if err := d.dev.Tx([]byte{out}, nil); err != nil {
			return fmt.Errorf("hd44780: i2c write: %w", err)
		}
		time.Sleep(50 * time.Microsecond)
	}
	return nil
}
