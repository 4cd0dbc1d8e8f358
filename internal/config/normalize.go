// internal/config/normalize.go
package config

// DefaultBaud matches the legacy numeric display's fixed line rate.
const DefaultBaud = 115200

// DefaultDisplayAddr is the usual PCF8574 backpack address.
const DefaultDisplayAddr uint16 = 0x27

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Bridge

	if b.Serial.Baud == 0 {
		b.Serial.Baud = DefaultBaud
	}

	if b.Display.Addr == 0 {
		b.Display.Addr = DefaultDisplayAddr
	}

	if b.Log.File == "" {
		b.Log.File = "ontime-bridge.log"
	}
}
