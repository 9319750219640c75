package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"triangula/host/comm"
	"triangula/host/i2cdev"
	"triangula/host/serial"
	"triangula/protocol"
)

// Config is the YAML file surface of the CLI.
type Config struct {
	Bus  BusConfig  `yaml:"bus"`
	MQTT MQTTConfig `yaml:"mqtt"`
}

type BusConfig struct {
	Kind    string `yaml:"kind"`    // "i2c" or "serial"
	Device  string `yaml:"device"`  // /dev/i2c-1 or /dev/ttyUSB0
	Address uint8  `yaml:"address"` // slave address (i2c mode)
	Baud    int    `yaml:"baud"`    // bridge baud rate (serial mode)
}

type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
}

// loadConfig merges defaults, the optional file and the global flags,
// flags winning.
func loadConfig() (*Config, error) {
	cfg := &Config{
		Bus: BusConfig{
			Kind:    "i2c",
			Device:  "/dev/i2c-1",
			Address: protocol.SlaveAddress,
			Baud:    115200,
		},
	}
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}
	if busKind != "" {
		cfg.Bus.Kind = busKind
	}
	if busDevice != "" {
		cfg.Bus.Device = busDevice
	}
	return cfg, nil
}

// openBus opens the configured bus and returns it with its closer.
func openBus(cfg *Config) (comm.Bus, func() error, error) {
	switch cfg.Bus.Kind {
	case "i2c":
		dev, err := i2cdev.Open(cfg.Bus.Device, cfg.Bus.Address)
		if err != nil {
			return nil, nil, err
		}
		return dev, dev.Close, nil
	case "serial":
		scfg := serial.DefaultConfig(cfg.Bus.Device)
		if cfg.Bus.Baud != 0 {
			scfg.Baud = cfg.Bus.Baud
		}
		port, err := serial.Open(scfg)
		if err != nil {
			return nil, nil, err
		}
		bridge := serial.NewBridge(port)
		return bridge, bridge.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown bus kind %q", cfg.Bus.Kind)
	}
}
