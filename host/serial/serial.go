// Package serial drives the wheel controller through a UART-to-bus
// bridge adapter, for bench setups where the host has no native bus
// controller of its own.
package serial

import "io"

// Port represents a serial port. The indirection keeps the bridge
// testable against an in-memory pipe.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration for the bridge adapter.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate; the stock bridge firmware runs at 115200.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the stock bridge configuration for a device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
