// internal/config/config.go
package config

type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
}

type BridgeConfig struct {
	Ontime  OntimeConfig  `yaml:"ontime"`
	Serial  SerialConfig  `yaml:"serial"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// ---- ONTIME SOURCE ----

type OntimeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ---- LEGACY NUMERIC DISPLAY (RS-232) ----

type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// ---- LOCAL CHARACTER DISPLAY (I2C) ----

type DisplayConfig struct {
	Bus  string `yaml:"bus"`  // i2c bus name; empty selects the first available bus
	Addr uint16 `yaml:"addr"` // backpack address; 0 selects the default
}

// ---- LOGGING ----

type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}
