// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

// helper to build a minimal valid config quickly
func valid() *Config {
	return &Config{
		Bridge: BridgeConfig{
			Ontime: OntimeConfig{Host: "timer.local", Port: 4001},
			Serial: SerialConfig{Device: "/dev/ttyUSB0"},
		},
	}
}

// ---- tests ----

func TestValidate_MinimalConfig(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HostRequired(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Ontime.Host = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected host error, got nil")
	}
}

func TestValidate_HostTooLong(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Ontime.Host = strings.Repeat("a", HostMaxChars+1)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected host length error, got nil")
	}
}

func TestValidate_HostMaxLengthAllowed(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Ontime.Host = strings.Repeat("a", HostMaxChars)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HostASCIIOnly(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Ontime.Host = "timér.local"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ascii error, got nil")
	}
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := valid()
		cfg.Bridge.Ontime.Port = port

		if err := Validate(cfg); err == nil {
			t.Fatalf("expected port error for %d, got nil", port)
		}
	}
}

func TestValidate_SerialDeviceRequired(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Serial.Device = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected serial device error, got nil")
	}
}

func TestValidate_DisplayAddrSevenBit(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Display.Addr = 0x80

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected display addr error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := valid()
	Normalize(cfg)

	if cfg.Bridge.Serial.Baud != DefaultBaud {
		t.Fatalf("baud default not applied: %d", cfg.Bridge.Serial.Baud)
	}
	if cfg.Bridge.Display.Addr != DefaultDisplayAddr {
		t.Fatalf("display addr default not applied: 0x%02x", cfg.Bridge.Display.Addr)
	}
	if cfg.Bridge.Log.File == "" {
		t.Fatalf("log file default not applied")
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := valid()
	cfg.Bridge.Serial.Baud = 9600
	cfg.Bridge.Display.Addr = 0x3F
	Normalize(cfg)

	if cfg.Bridge.Serial.Baud != 9600 {
		t.Fatalf("explicit baud overwritten: %d", cfg.Bridge.Serial.Baud)
	}
	if cfg.Bridge.Display.Addr != 0x3F {
		t.Fatalf("explicit addr overwritten: 0x%02x", cfg.Bridge.Display.Addr)
	}
}
