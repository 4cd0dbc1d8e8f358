// internal/segment/encode.go
package segment

import "github.com/stagebridge/ontime-bridge/internal/timer"

// Legacy numeric display wire values.
// These define the protocol and MUST NOT be configurable.
const (
	ColorGreen byte = 0x01
	ColorRed   byte = 0x02
	ColorAmber byte = 0x03
)

// FrameLen is the fixed update frame size: minutes, seconds, color.
const FrameLen = 3

// EncodePair packs a two-digit decimal value into one byte with the
// nibble order swapped relative to packed BCD: the high nibble holds
// the ones digit, the low nibble the tens digit.
func EncodePair(v int) byte {
	return byte(v%10)<<4 | byte(v/10)
}

// ColorByte maps a color class onto its wire value.
func ColorByte(c timer.Class) byte {
	switch c {
	case timer.ClassRed:
		return ColorRed
	case timer.ClassAmber:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// EncodeFrame builds one complete update frame.
// No framing, no checksum. No IO. No side effects.
func EncodeFrame(t timer.DisplayTime, c timer.Class) [FrameLen]byte {
	return [FrameLen]byte{
		EncodePair(t.Minutes),
		EncodePair(t.Seconds),
		ColorByte(c),
	}
}
