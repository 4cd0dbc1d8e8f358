// internal/config/validate.go
package config

import (
	"fmt"
)

// HostMaxChars is the maximum length of the ontime host name.
// The transport builds its websocket origin from this value and the
// buffer it lands in is fixed-size on the legacy deployment.
const HostMaxChars = 59

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Bridge

	// ------------------------------------------------------------
	// ONTIME SOURCE
	// ------------------------------------------------------------

	if b.Ontime.Host == "" {
		return fmt.Errorf("ontime: host is required")
	}

	if len(b.Ontime.Host) > HostMaxChars {
		return fmt.Errorf(
			"ontime: host exceeds %d characters (got %d)",
			HostMaxChars,
			len(b.Ontime.Host),
		)
	}

	// host sanity (ASCII only)
	for i := 0; i < len(b.Ontime.Host); i++ {
		if b.Ontime.Host[i] > 0x7F {
			return fmt.Errorf("ontime: host must contain ASCII characters only")
		}
	}

	if b.Ontime.Port < 1 || b.Ontime.Port > 65535 {
		return fmt.Errorf("ontime: port %d out of range", b.Ontime.Port)
	}

	// ------------------------------------------------------------
	// LEGACY NUMERIC DISPLAY
	// ------------------------------------------------------------

	if b.Serial.Device == "" {
		return fmt.Errorf("serial: device is required")
	}

	if b.Serial.Baud < 0 {
		return fmt.Errorf("serial: baud %d out of range", b.Serial.Baud)
	}

	// ------------------------------------------------------------
	// LOCAL CHARACTER DISPLAY
	// ------------------------------------------------------------

	if b.Display.Addr > 0x7F {
		return fmt.Errorf(
			"display: addr 0x%02x is not a 7-bit i2c address",
			b.Display.Addr,
		)
	}

	return nil
}
